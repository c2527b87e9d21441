package sheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForgeTemplateDraftCommit(t *testing.T) {
	s := newTestSheet(t)
	f := NewForge(s)

	require.NoError(t, f.OpenTemplate("dagger"))
	f.Draft().Name = "Ceremonial Dagger"
	f.Draft().Data.Weapon.Damage = "1d6"

	if got := len(s.Character().Inventory); got != 0 {
		t.Fatalf("inventory length = %d before commit, want 0", got)
	}

	require.NoError(t, f.Commit())

	inv := s.Character().Inventory
	if len(inv) != 1 {
		t.Fatalf("inventory length = %d after commit, want 1", len(inv))
	}
	if inv[0].Name != "Ceremonial Dagger" || inv[0].Data.Weapon.Damage != "1d6" {
		t.Fatalf("committed item = %q %q, edits lost", inv[0].Name, inv[0].Data.Weapon.Damage)
	}
	if f.Draft() != nil {
		t.Fatal("draft still open after commit")
	}
}

func TestForgeCopyCommitReplacesInstance(t *testing.T) {
	s := newTestSheet(t)
	require.NoError(t, s.AddItem("backpack", ""))
	pack := byTemplate(s.Character(), "backpack")[0]
	require.NoError(t, s.AddItem("dagger", pack.InstanceID))
	dagger := byTemplate(s.Character(), "dagger")[0]

	f := NewForge(s)
	require.NoError(t, f.OpenCopy(dagger.InstanceID))
	f.Draft().Name = "Poisoned Dagger"

	if dagger.Name != "Dagger" {
		t.Fatalf("original name = %q before commit, draft edit leaked", dagger.Name)
	}

	require.NoError(t, f.Commit())

	if dagger.Name != "Poisoned Dagger" {
		t.Fatalf("name = %q after commit, want Poisoned Dagger", dagger.Name)
	}
	if dagger.ParentID != pack.InstanceID {
		t.Fatalf("parent = %q after commit, want preserved %q", dagger.ParentID, pack.InstanceID)
	}
	if got := len(byTemplate(s.Character(), "dagger")); got != 1 {
		t.Fatalf("dagger count = %d after replace, want 1", got)
	}
}

func TestForgeDiscard(t *testing.T) {
	s := newTestSheet(t)
	f := NewForge(s)
	require.NoError(t, f.OpenTemplate("torch"))

	f.Discard()
	if f.Draft() != nil {
		t.Fatal("draft survived discard")
	}
	if got := len(s.Character().Inventory); got != 0 {
		t.Fatalf("inventory length = %d after discard, want 0", got)
	}

	err := f.Commit()
	if !errors.Is(err, ErrNoDraft) {
		t.Fatalf("Commit without draft = %v, want ErrNoDraft", err)
	}
}

func TestForgeOpenCopyMissingInstance(t *testing.T) {
	s := newTestSheet(t)
	f := NewForge(s)
	err := f.OpenCopy("no-such-instance")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("OpenCopy(missing) = %v, want ErrItemNotFound", err)
	}
}
