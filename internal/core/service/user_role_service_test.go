package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string, roles ...domain.Role) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user, err := repo.Insert(context.Background(), &domain.User{
		Username:  username,
		Email:     username + "@example.com",
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

func TestUserRoleService_Grant(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := NewUserRoleService(repo, audit, zerolog.Nop())

	seeded := seedUser(t, repo, "alice", domain.RoleParent)

	updated, err := svc.Grant(context.Background(), "admin1", seeded.ID, "teacher")
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if !updated.HasRole(domain.RoleTeacher) || !updated.HasRole(domain.RoleParent) {
		t.Fatalf("expected parent+teacher, got %v", updated.Roles)
	}
	if audit.lastAction() != domain.AuditRoleGranted {
		t.Fatalf("expected role_granted audit event, got %q", audit.lastAction())
	}
}

func TestUserRoleService_Grant_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserRoleService(repo, &stubAudit{}, zerolog.Nop())

	seeded := seedUser(t, repo, "bob", domain.RoleStaff)

	updated, err := svc.Grant(context.Background(), "admin1", seeded.ID, "staff")
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if len(updated.Roles) != 1 {
		t.Fatalf("granting a held role must not duplicate it: %v", updated.Roles)
	}
}

func TestUserRoleService_Grant_UnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserRoleService(repo, &stubAudit{}, zerolog.Nop())

	seeded := seedUser(t, repo, "carol", domain.RoleParent)

	if _, err := svc.Grant(context.Background(), "admin1", seeded.ID, "wizard"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestUserRoleService_Revoke(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := NewUserRoleService(repo, audit, zerolog.Nop())

	seeded := seedUser(t, repo, "dave", domain.RoleParent, domain.RoleStaff)

	updated, err := svc.Revoke(context.Background(), "admin1", seeded.ID, "staff")
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if updated.HasRole(domain.RoleStaff) {
		t.Fatalf("staff role should be gone: %v", updated.Roles)
	}
	if !updated.HasRole(domain.RoleParent) {
		t.Fatalf("parent role should remain: %v", updated.Roles)
	}
	if audit.lastAction() != domain.AuditRoleRevoked {
		t.Fatalf("expected role_revoked audit event, got %q", audit.lastAction())
	}
}

func TestUserRoleService_Revoke_LastRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserRoleService(repo, &stubAudit{}, zerolog.Nop())

	seeded := seedUser(t, repo, "erin", domain.RoleParent)

	if _, err := svc.Revoke(context.Background(), "admin1", seeded.ID, "parent"); !errors.Is(err, domain.ErrLastRole) {
		t.Fatalf("expected ErrLastRole, got %v", err)
	}

	// The role must survive the refused revocation.
	roles, err := svc.Roles(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("Roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != domain.RoleParent {
		t.Fatalf("role set changed: %v", roles)
	}
}

func TestUserRoleService_Revoke_UnheldRoleWithOneRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserRoleService(repo, &stubAudit{}, zerolog.Nop())

	// A single-role user revoking a role they do not hold is not a
	// last-role violation; it is simply a no-op removal.
	seeded := seedUser(t, repo, "frank", domain.RoleParent)

	updated, err := svc.Revoke(context.Background(), "admin1", seeded.ID, "teacher")
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != domain.RoleParent {
		t.Fatalf("unexpected roles: %v", updated.Roles)
	}
}

func TestUserRoleService_Revoke_UserNotFound(t *testing.T) {
	svc := NewUserRoleService(newStubUserRepo(), &stubAudit{}, zerolog.Nop())
	if _, err := svc.Revoke(context.Background(), "admin1", "missing", "parent"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRoleService_UsersWithRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserRoleService(repo, &stubAudit{}, zerolog.Nop())

	seedUser(t, repo, "gina", domain.RoleTeacher)
	seedUser(t, repo, "hugo", domain.RoleTeacher, domain.RoleStaff)
	seedUser(t, repo, "iris", domain.RoleParent)

	teachers, err := svc.UsersWithRole(context.Background(), "teacher")
	if err != nil {
		t.Fatalf("UsersWithRole: %v", err)
	}
	if len(teachers) != 2 {
		t.Fatalf("expected 2 teachers, got %d", len(teachers))
	}

	if _, err := svc.UsersWithRole(context.Background(), "wizard"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
