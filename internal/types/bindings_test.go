package types

import "testing"

func TestTableForDefaults(t *testing.T) {
  cases := []struct {
    kind string
    want string
  }{
    {kind: KindUser, want: "users"},
    {kind: KindProject, want: "projects"},
    {kind: KindNewsArticle, want: "morning_news"},
    {kind: KindStat, want: "stats"},
    {kind: KindChangeEvent, want: "change_events"},
  }
  for _, tc := range cases {
    t.Run(tc.kind, func(t *testing.T) {
      if got := TableFor(tc.kind); got != tc.want {
        t.Fatalf("TableFor(%q)=%q, want %q", tc.kind, got, tc.want)
      }
    })
  }
}

func TestApplyBindingsOverrides(t *testing.T) {
  t.Cleanup(ResetBindings)

  if err := ApplyBindings(map[string]string{KindNewsArticle: "evening_news"}); err != nil {
    t.Fatalf("ApplyBindings: %v", err)
  }
  if got := TableFor(KindNewsArticle); got != "evening_news" {
    t.Fatalf("TableFor=%q, want evening_news", got)
  }
  // Untouched kinds keep their defaults.
  if got := TableFor(KindUser); got != "users" {
    t.Fatalf("TableFor(user)=%q, want users", got)
  }
}

func TestApplyBindingsRejectsUnknownKind(t *testing.T) {
  t.Cleanup(ResetBindings)

  if err := ApplyBindings(map[string]string{"mystery": "somewhere"}); err == nil {
    t.Fatal("unknown kind accepted")
  }
  if err := ApplyBindings(map[string]string{KindUser: ""}); err == nil {
    t.Fatal("empty table accepted")
  }
}
