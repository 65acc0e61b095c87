package main

import (
  "fmt"
  "os"
  "github.com/yungbote/recorddesk-backend/internal/app"
)

func main() {
  a, err := app.New()
  if err != nil {
    fmt.Printf("Failed to init app: %v\n", err)
    os.Exit(1)
  }
  defer a.Close()

  fmt.Printf("Server listening on :%d\n", a.Cfg.Port)
  if err := a.Run(); err != nil {
    a.Log.Warn("Server failed", "error", err)
  }
}
