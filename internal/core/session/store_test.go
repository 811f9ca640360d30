package session

import (
	"testing"
	"time"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

func testRoster() []domain.Identity {
	return []domain.Identity{
		{ID: 1, Username: "admin", Role: domain.RoleArtist, IsActive: true},
		{ID: 2, Username: "painter1", Role: domain.RoleArtist, IsActive: true},
		{ID: 7, Username: "dormant", Role: domain.RoleArtist, IsActive: false},
		{ID: 101, Username: "art_lover", Role: domain.RoleEnthusiast, IsActive: true},
	}
}

func newTestStore() *Store {
	return New(Options{Roster: testRoster()})
}

func TestStore_Login_Success(t *testing.T) {
	s := newTestStore()

	if !s.Login("admin", "") {
		t.Fatalf("expected login to succeed")
	}
	cur, ok := s.Current()
	if !ok {
		t.Fatalf("expected a session after login")
	}
	if cur.ID != 1 || cur.Username != "admin" {
		t.Fatalf("unexpected session identity: %+v", cur)
	}
}

func TestStore_Login_AnyPasswordAccepted(t *testing.T) {
	s := newTestStore()

	if !s.Login("painter1", "totally-wrong") {
		t.Fatalf("demo verifier should accept any password")
	}
}

func TestStore_Login_UnknownUsername(t *testing.T) {
	s := newTestStore()

	if s.Login("ghost", "") {
		t.Fatalf("expected login to fail for unknown username")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("session should stay empty after failed login")
	}
}

func TestStore_Login_FailureLeavesSessionUnchanged(t *testing.T) {
	s := newTestStore()

	if !s.Login("admin", "") {
		t.Fatalf("setup login failed")
	}
	if s.Login("ghost", "") {
		t.Fatalf("expected failure for unknown username")
	}
	cur, ok := s.Current()
	if !ok || cur.ID != 1 {
		t.Fatalf("failed login must not touch the session, got %+v ok=%v", cur, ok)
	}
}

func TestStore_Login_CaseSensitive(t *testing.T) {
	s := newTestStore()

	if s.Login("Admin", "") {
		t.Fatalf("username comparison must be case-sensitive")
	}
}

func TestStore_Login_InactiveIdentity(t *testing.T) {
	s := newTestStore()

	if s.Login("dormant", "") {
		t.Fatalf("inactive identities must not log in")
	}
}

func TestStore_Login_VerifierRejects(t *testing.T) {
	s := New(Options{
		Roster:   testRoster(),
		Verifier: VerifierFunc(func(_ domain.Identity, pw string) bool { return pw == "s3cret" }),
	})

	if s.Login("admin", "wrong") {
		t.Fatalf("verifier rejection must fail the login")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("session must stay empty after verifier rejection")
	}
	if !s.Login("admin", "s3cret") {
		t.Fatalf("verifier approval must allow the login")
	}
}

func TestStore_Logout_Idempotent(t *testing.T) {
	s := newTestStore()

	s.Logout() // no session yet
	if _, ok := s.Current(); ok {
		t.Fatalf("logout on empty session must stay empty")
	}

	_ = s.Login("admin", "")
	s.Logout()
	if _, ok := s.Current(); ok {
		t.Fatalf("expected empty session after logout")
	}
	s.Logout()
	if _, ok := s.Current(); ok {
		t.Fatalf("repeated logout must stay empty")
	}
}

func TestStore_Register_AssignsNextID(t *testing.T) {
	fixed := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	s := New(Options{
		Roster: testRoster(),
		Now:    func() time.Time { return fixed },
	})

	ok := s.Register(RegisterInput{Username: "newbie", Email: "n@b.com", Role: domain.RoleEnthusiast})
	if !ok {
		t.Fatalf("expected registration to succeed")
	}

	cur, active := s.Current()
	if !active {
		t.Fatalf("registration must auto-login")
	}
	if cur.ID != 102 {
		t.Fatalf("expected id 102 (max 101 + 1), got %d", cur.ID)
	}
	if !cur.IsActive {
		t.Fatalf("new identities must be active")
	}
	if !cur.CreatedAt.Equal(fixed) {
		t.Fatalf("expected creation timestamp %v, got %v", fixed, cur.CreatedAt)
	}

	roster := s.Roster()
	if len(roster) != 5 {
		t.Fatalf("expected roster to grow by one, got %d entries", len(roster))
	}
	if roster[4].Username != "newbie" {
		t.Fatalf("new identity must be appended last, got %+v", roster[4])
	}
}

func TestStore_Register_DuplicateUsername(t *testing.T) {
	s := newTestStore()
	before := s.Roster()

	if s.Register(RegisterInput{Username: "admin", Role: domain.RoleArtist}) {
		t.Fatalf("duplicate username must be rejected")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("failed registration must not create a session")
	}
	if got := s.Roster(); len(got) != len(before) {
		t.Fatalf("failed registration must not mutate the roster")
	}
}

func TestStore_Register_UsernamesStayDistinct(t *testing.T) {
	s := newTestStore()
	_ = s.Register(RegisterInput{Username: "u1", Role: domain.RoleEnthusiast})
	_ = s.Register(RegisterInput{Username: "u2", Role: domain.RoleEnthusiast})
	_ = s.Register(RegisterInput{Username: "u1", Role: domain.RoleEnthusiast})

	seen := make(map[string]bool)
	for _, id := range s.Roster() {
		if seen[id.Username] {
			t.Fatalf("duplicate username %q in roster", id.Username)
		}
		seen[id.Username] = true
	}
}

func TestStore_UpdateIdentity_SyncsSession(t *testing.T) {
	s := newTestStore()
	_ = s.Login("admin", "")

	updated := domain.Identity{ID: 1, Username: "admin", Email: "new@artgallery.com", Role: domain.RoleArtist, Bio: "updated", IsActive: true}
	s.UpdateIdentity(updated)

	cur, _ := s.Current()
	if cur.Email != "new@artgallery.com" || cur.Bio != "updated" {
		t.Fatalf("session must reflect the updated identity, got %+v", cur)
	}

	for _, id := range s.Roster() {
		if id.ID == 1 && id.Email != "new@artgallery.com" {
			t.Fatalf("roster entry must be replaced, got %+v", id)
		}
	}
}

func TestStore_UpdateIdentity_OtherIdentityLeavesSessionAlone(t *testing.T) {
	s := newTestStore()
	_ = s.Login("admin", "")

	s.UpdateIdentity(domain.Identity{ID: 2, Username: "painter1", Bio: "changed", Role: domain.RoleArtist, IsActive: true})

	cur, _ := s.Current()
	if cur.ID != 1 || cur.Bio == "changed" {
		t.Fatalf("updating another identity must not touch the session, got %+v", cur)
	}
}

func TestStore_UpdateIdentity_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.Roster()

	s.UpdateIdentity(domain.Identity{ID: 9999, Username: "nobody"})

	after := s.Roster()
	if len(after) != len(before) {
		t.Fatalf("unknown id must not change roster size")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("unknown id must leave roster untouched, entry %d changed", i)
		}
	}
}

func TestStore_Subscribe_NotifiedOnMutations(t *testing.T) {
	s := newTestStore()

	var got []Snapshot
	cancel := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	_ = s.Login("admin", "")
	s.Logout()

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if !got[0].Authenticated || got[0].Identity.Username != "admin" {
		t.Fatalf("first notification should carry the login, got %+v", got[0])
	}
	if got[1].Authenticated {
		t.Fatalf("second notification should be the cleared session")
	}

	cancel()
	_ = s.Login("painter1", "")
	if len(got) != 2 {
		t.Fatalf("cancelled subscriber must not be notified")
	}
}

func TestStore_Subscribe_FailedMutationsDoNotNotify(t *testing.T) {
	s := newTestStore()

	notified := 0
	_ = s.Subscribe(func(Snapshot) { notified++ })

	_ = s.Login("ghost", "")
	_ = s.Register(RegisterInput{Username: "admin"})
	s.UpdateIdentity(domain.Identity{ID: 9999})

	if notified != 0 {
		t.Fatalf("failed operations must not notify, got %d notifications", notified)
	}
}

func TestSnapshot_RoleFlags(t *testing.T) {
	s := newTestStore()

	snap := s.Snapshot()
	if snap.IsArtist() || snap.IsEnthusiast() {
		t.Fatalf("empty session must have no role flags")
	}

	_ = s.Login("admin", "")
	snap = s.Snapshot()
	if !snap.IsArtist() || snap.IsEnthusiast() {
		t.Fatalf("artist session flags wrong: %+v", snap)
	}

	_ = s.Login("art_lover", "")
	snap = s.Snapshot()
	if snap.IsArtist() || !snap.IsEnthusiast() {
		t.Fatalf("enthusiast session flags wrong: %+v", snap)
	}
}

func TestBcryptVerifier(t *testing.T) {
	v, err := NewBcryptVerifier(map[int]string{1: "hunter2"})
	if err != nil {
		t.Fatalf("building verifier: %v", err)
	}
	admin := domain.Identity{ID: 1, Username: "admin"}
	if !v.Verify(admin, "hunter2") {
		t.Fatalf("correct password must verify")
	}
	if v.Verify(admin, "wrong") {
		t.Fatalf("wrong password must not verify")
	}
	if v.Verify(domain.Identity{ID: 2}, "hunter2") {
		t.Fatalf("identity without a hash must not verify")
	}
}

func TestDefaultRoster_Fixture(t *testing.T) {
	roster := DefaultRoster()
	if len(roster) != 5 {
		t.Fatalf("expected 5 seed identities, got %d", len(roster))
	}
	if roster[0].Username != "admin" || roster[0].ID != 1 {
		t.Fatalf("unexpected first fixture: %+v", roster[0])
	}
	maxID := 0
	for _, id := range roster {
		if !id.IsActive {
			t.Fatalf("seed identities must be active: %+v", id)
		}
		if id.ID > maxID {
			maxID = id.ID
		}
	}
	if maxID != 101 {
		t.Fatalf("expected max seed id 101, got %d", maxID)
	}
}
