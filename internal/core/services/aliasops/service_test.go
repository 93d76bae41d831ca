package aliasops

import (
	"errors"
	"testing"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/core/testutil"
)

func accept(string) bool  { return true }
func decline(string) bool { return false }

type fixture struct {
	service ports.AliasService
	store   *testutil.MockConfigStore
	sink    *testutil.MockDeltaSink
	presets *testutil.MockPresetProvider
}

func newFixture(cfg *aliascfg.Config, sh shell.Type) *fixture {
	store := &testutil.MockConfigStore{
		LoadFunc: func() (*aliascfg.Config, error) { return cfg, nil },
	}
	sink := &testutil.MockDeltaSink{}
	presets := &testutil.MockPresetProvider{}
	return &fixture{
		service: NewService(store, sink, presets, sh),
		store:   store,
		sink:    sink,
		presets: presets,
	}
}

func TestNewService_PanicsOnNilStore(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil store")
		}
	}()
	NewService(nil, &testutil.MockDeltaSink{}, nil, shell.Bash)
}

func TestAddAlias(t *testing.T) {
	t.Run("new alias is saved and defined in the shell", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ll", "ls -la", "", true, false), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Changed {
			t.Error("expected a change")
		}
		if len(f.store.Saved) != 1 {
			t.Fatalf("expected 1 save, got %d", len(f.store.Saved))
		}
		if want := "alias ll='ls -la'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
		if len(f.sink.Deltas) != 1 || f.sink.Deltas[0] != res.Delta {
			t.Errorf("sink received %v", f.sink.Deltas)
		}
	})

	t.Run("disabled alias produces no delta", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ll", "ls -la", "", false, false), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Changed || res.Delta != "" {
			t.Errorf("got Changed=%v Delta=%q", res.Changed, res.Delta)
		}
		if len(f.sink.Deltas) != 0 {
			t.Errorf("sink received %v", f.sink.Deltas)
		}
	})

	t.Run("global alias on bash produces no delta", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("G", "| grep", "", true, true), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Changed || res.Delta != "" {
			t.Errorf("got Changed=%v Delta=%q", res.Changed, res.Delta)
		}
	})

	t.Run("declined overwrite leaves config untouched", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ll", "ls -lah", "", true, false), decline, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Changed {
			t.Error("expected no change")
		}
		if len(f.store.Saved) != 0 {
			t.Errorf("expected no save, got %d", len(f.store.Saved))
		}
		if cfg.Aliases[0].Command != "ls -la" {
			t.Errorf("command = %q", cfg.Aliases[0].Command)
		}
	})

	t.Run("confirmed overwrite replaces in place", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{
			aliascfg.NewAlias("ll", "ls -la", "", true, false),
			aliascfg.NewAlias("py", "python3", "", true, false),
		}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ll", "ls -lah", "", true, false), accept, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Changed {
			t.Error("expected a change")
		}
		if want := "alias ll='ls -lah'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
		if cfg.Aliases[0].Name != "ll" || cfg.Aliases[0].Command != "ls -lah" {
			t.Errorf("alias position not preserved: %+v", cfg.Aliases)
		}
	})

	t.Run("overwrite with a disabled definition removes the live alias", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ll", "ls -la", "", false, false), accept, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "unalias 'll'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("unknown group is created when confirmed", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ga", "git add", "git", true, false), nil, accept)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Changed {
			t.Error("expected a change")
		}
		saved := f.store.Saved[0]
		if !saved.HasGroup("git") {
			t.Error("group was not created")
		}
		if !saved.HasAlias("ga") {
			t.Error("alias was not added")
		}
	})

	t.Run("unknown group declined leaves config untouched", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		res, err := f.service.AddAlias(aliascfg.NewAlias("ga", "git add", "git", true, false), nil, decline)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Changed || len(f.store.Saved) != 0 {
			t.Errorf("got Changed=%v saves=%d", res.Changed, len(f.store.Saved))
		}
	})

	t.Run("overwrite cannot move a reserved name into a group", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "git", Enabled: true}}
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("command", "ls", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		_, err := f.service.AddAlias(aliascfg.NewAlias("command", "ls", "git", true, false), accept, nil)
		if !errors.Is(err, aliascfg.ErrInvalidName) {
			t.Errorf("expected ErrInvalidName, got %v", err)
		}
		if len(f.store.Saved) != 0 {
			t.Error("config was saved despite the error")
		}
	})

	t.Run("invalid name is rejected", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		_, err := f.service.AddAlias(aliascfg.NewAlias("bad name", "x", "", true, false), nil, nil)
		if !errors.Is(err, aliascfg.ErrInvalidName) {
			t.Errorf("expected ErrInvalidName, got %v", err)
		}
		if len(f.store.Saved) != 0 {
			t.Error("config was saved despite the error")
		}
	})
}

func TestRemoveAliases(t *testing.T) {
	t.Run("active aliases are removed from the shell", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{
			aliascfg.NewAlias("ll", "ls -la", "", true, false),
			aliascfg.NewAlias("off", "echo off", "", false, false),
		}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.RemoveAliases([]string{"ll", "off"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "unalias 'll'\n"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
		if len(cfg.Aliases) != 0 {
			t.Errorf("aliases left: %+v", cfg.Aliases)
		}
	})

	t.Run("unknown alias aborts without saving", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		_, err := f.service.RemoveAliases([]string{"nope"})
		if !errors.Is(err, aliascfg.ErrAliasNotFound) {
			t.Errorf("expected ErrAliasNotFound, got %v", err)
		}
		if len(f.store.Saved) != 0 {
			t.Error("config was saved despite the error")
		}
	})
}

func TestRemoveGroup(t *testing.T) {
	groupedConfig := func(groupEnabled bool) *aliascfg.Config {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "git", Enabled: groupEnabled}}
		cfg.Aliases = []aliascfg.Alias{
			aliascfg.NewAlias("ga", "git add", "git", true, false),
			aliascfg.NewAlias("py", "python3", "", true, false),
		}
		return cfg
	}

	t.Run("without reassign members are deleted and removed live", func(t *testing.T) {
		cfg := groupedConfig(true)
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.RemoveGroup("git", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "unalias 'ga'\n"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
		if cfg.HasAlias("ga") {
			t.Error("member alias survived group removal")
		}
		if !cfg.HasAlias("py") {
			t.Error("unrelated alias was removed")
		}
	})

	t.Run("reassigned members keep their definitions", func(t *testing.T) {
		cfg := groupedConfig(true)
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.RemoveGroup("git", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Delta != "" {
			t.Errorf("delta = %q, want empty", res.Delta)
		}
		a, ok := cfg.FindAlias("ga")
		if !ok || a.Group != "" {
			t.Errorf("alias not reassigned: %+v", a)
		}
	})

	t.Run("reassigning out of a disabled group activates members", func(t *testing.T) {
		cfg := groupedConfig(false)
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.RemoveGroup("git", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "alias ga='git add'\n"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})
}

func TestRemoveAll(t *testing.T) {
	cfg := aliascfg.New()
	cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
	f := newFixture(cfg, shell.Bash)

	res, err := f.service.RemoveAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "unalias -a\n"; res.Delta != want {
		t.Errorf("delta = %q, want %q", res.Delta, want)
	}
	if len(cfg.Aliases) != 0 || len(cfg.Groups) != 0 {
		t.Error("config not emptied")
	}
}

func TestMoveAlias(t *testing.T) {
	t.Run("moving into a disabled group removes the live alias", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "off", Enabled: false}}
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.MoveAlias("ll", "off")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "unalias 'll'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("moving out of a disabled group defines the alias", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "off", Enabled: false}}
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "off", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.MoveAlias("ll", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "alias ll='ls -la'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("moving between enabled groups is silent", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "git", Enabled: true}}
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ga", "git add", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.MoveAlias("ga", "git")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Delta != "" {
			t.Errorf("delta = %q, want empty", res.Delta)
		}
		if !res.Changed {
			t.Error("expected a change")
		}
	})
}

func TestRenameAlias(t *testing.T) {
	cfg := aliascfg.New()
	cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
	f := newFixture(cfg, shell.Bash)

	res, err := f.service.RenameAlias("ll", "la")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "unalias 'll'\nalias la='ls -la'\n"; res.Delta != want {
		t.Errorf("delta = %q, want %q", res.Delta, want)
	}
	if !cfg.HasAlias("la") || cfg.HasAlias("ll") {
		t.Errorf("rename not applied: %+v", cfg.Aliases)
	}
}

func TestEditAlias(t *testing.T) {
	cfg := aliascfg.New()
	cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
	f := newFixture(cfg, shell.Bash)

	res, err := f.service.EditAlias("ll", "ls -lah")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "alias ll='ls -lah'"; res.Delta != want {
		t.Errorf("delta = %q, want %q", res.Delta, want)
	}
}

func TestEnableDisableAlias(t *testing.T) {
	t.Run("enable defines the alias", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", false, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.EnableAlias("ll")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "alias ll='ls -la'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("enabling an already enabled alias is a no-op", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.EnableAlias("ll")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Changed || len(f.store.Saved) != 0 {
			t.Errorf("got Changed=%v saves=%d", res.Changed, len(f.store.Saved))
		}
	})

	t.Run("disable removes the live alias", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.DisableAlias("ll")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "unalias 'll'"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("disabling inside a disabled group is silent", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "git", Enabled: false}}
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ga", "git add", "git", true, false)}
		f := newFixture(cfg, shell.Bash)

		res, err := f.service.DisableAlias("ga")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Delta != "" {
			t.Errorf("delta = %q, want empty", res.Delta)
		}
	})
}

func TestEnableDisableGroup(t *testing.T) {
	newCfg := func(enabled bool) *aliascfg.Config {
		cfg := aliascfg.New()
		cfg.Groups = []aliascfg.Group{{Name: "git", Enabled: enabled}}
		cfg.Aliases = []aliascfg.Alias{
			aliascfg.NewAlias("ga", "git add", "git", true, false),
			aliascfg.NewAlias("gc", "git commit", "git", false, false),
		}
		return cfg
	}

	t.Run("enable defines the enabled members only", func(t *testing.T) {
		f := newFixture(newCfg(false), shell.Bash)

		res, err := f.service.EnableGroup("git")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "alias ga='git add'\n"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("disable removes the enabled members only", func(t *testing.T) {
		f := newFixture(newCfg(true), shell.Bash)

		res, err := f.service.DisableGroup("git")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "unalias 'ga'\n"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
	})

	t.Run("unknown group is an error", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)

		_, err := f.service.EnableGroup("nope")
		if !errors.Is(err, aliascfg.ErrGroupNotFound) {
			t.Errorf("expected ErrGroupNotFound, got %v", err)
		}
	})
}

func TestImportPresets(t *testing.T) {
	t.Run("existing aliases are skipped", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)
		f.presets.LoadPresetsFunc = func(path string) ([]aliascfg.Alias, error) {
			return []aliascfg.Alias{
				aliascfg.NewAlias("ll", "ls -lah", "", true, false),
				aliascfg.NewAlias("ga", "git add", "git", true, false),
			}, nil
		}

		res, err := f.service.ImportPresets("presets.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Added) != 1 || res.Added[0] != "ga" {
			t.Errorf("added = %v", res.Added)
		}
		if len(res.Skipped) != 1 || res.Skipped[0] != "ll" {
			t.Errorf("skipped = %v", res.Skipped)
		}
		if !cfg.HasGroup("git") {
			t.Error("preset group was not created")
		}
		if want := "alias ga='git add'\n"; res.Delta != want {
			t.Errorf("delta = %q, want %q", res.Delta, want)
		}
		if a, _ := cfg.FindAlias("ll"); a.Command != "ls -la" {
			t.Errorf("existing alias was overwritten: %+v", a)
		}
	})

	t.Run("nothing to import means no save", func(t *testing.T) {
		cfg := aliascfg.New()
		cfg.Aliases = []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}
		f := newFixture(cfg, shell.Bash)
		f.presets.LoadPresetsFunc = func(path string) ([]aliascfg.Alias, error) {
			return []aliascfg.Alias{aliascfg.NewAlias("ll", "ls -la", "", true, false)}, nil
		}

		res, err := f.service.ImportPresets("presets.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Changed || len(f.store.Saved) != 0 {
			t.Errorf("got Changed=%v saves=%d", res.Changed, len(f.store.Saved))
		}
	})

	t.Run("provider errors are surfaced", func(t *testing.T) {
		f := newFixture(aliascfg.New(), shell.Bash)
		f.presets.LoadPresetsFunc = func(path string) ([]aliascfg.Alias, error) {
			return nil, errors.New("no such file")
		}

		_, err := f.service.ImportPresets("missing.yaml")
		if err == nil {
			t.Error("expected an error")
		}
	})
}

func TestSync(t *testing.T) {
	cfg := aliascfg.New()
	cfg.Aliases = []aliascfg.Alias{
		aliascfg.NewAlias("ll", "ls -la", "", true, false),
		aliascfg.NewAlias("off", "echo off", "", false, false),
	}
	f := newFixture(cfg, shell.Bash)

	script, err := f.service.Sync()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "unalias -a\nalias ll='ls -la'\n"
	if script != want {
		t.Errorf("script = %q, want %q", script, want)
	}
	if len(f.sink.Deltas) != 1 || f.sink.Deltas[0] != want {
		t.Errorf("sink received %v", f.sink.Deltas)
	}
}

func TestList(t *testing.T) {
	cfg := aliascfg.New()
	cfg.Aliases = []aliascfg.Alias{
		aliascfg.NewAlias("ll", "ls -la", "", true, false),
		aliascfg.NewAlias("G", "| grep", "", true, true),
	}
	f := newFixture(cfg, shell.Bash)

	aliases, err := f.service.List(ports.ListFilter{Global: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("global filter on bash returned %v", aliases)
	}
}

func TestLoadErrorPropagates(t *testing.T) {
	f := newFixture(aliascfg.New(), shell.Bash)
	f.store.LoadFunc = func() (*aliascfg.Config, error) {
		return nil, errors.New("disk gone")
	}

	if _, err := f.service.RemoveAll(); err == nil {
		t.Error("expected an error")
	}
	if len(f.store.Saved) != 0 {
		t.Error("config was saved despite the error")
	}
}
