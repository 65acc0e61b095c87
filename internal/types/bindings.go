package types

import "fmt"

// Logical entity kinds. Repos and the event dispatcher speak in kinds; the
// physical table behind a kind is resolved through the binding registry.
const (
  KindUser        = "user"
  KindProject     = "project"
  KindNewsArticle = "news-article"
  KindStat        = "stat"
  KindChangeEvent = "change-event"
)

var defaultBindings = map[string]string{
  KindUser:        "users",
  KindProject:     "projects",
  KindNewsArticle: "morning_news",
  KindStat:        "stats",
  KindChangeEvent: "change_events",
}

var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]string) map[string]string {
  out := make(map[string]string, len(src))
  for k, v := range src {
    out[k] = v
  }
  return out
}

// ApplyBindings overrides the kind→table map. It must run at startup, before
// the DB is opened or any repo is wired; binding an unknown kind is a
// configuration error.
func ApplyBindings(overrides map[string]string) error {
  for kind, table := range overrides {
    if _, ok := bindings[kind]; !ok {
      return fmt.Errorf("unknown entity kind %q in bindings", kind)
    }
    if table == "" {
      return fmt.Errorf("empty table binding for entity kind %q", kind)
    }
    bindings[kind] = table
  }
  return nil
}

// ResetBindings restores the defaults. Only tests should need this.
func ResetBindings() {
  bindings = copyBindings(defaultBindings)
}

func TableFor(kind string) string {
  table, ok := bindings[kind]
  if !ok {
    panic(fmt.Sprintf("no table binding for entity kind %q", kind))
  }
  return table
}
