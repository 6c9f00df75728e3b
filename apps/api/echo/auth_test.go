package echoapi

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/user"
	dummydb "github.com/trezcool/maneno/storage/database/dummy"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	t.Helper()

	os.Setenv("ENV", "TEST")
	initAuth(core.NewConfig())

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewUserRepository(db)
	svc := user.NewService(repo, nil, conf)
	return svc, repo
}

func createUser(t *testing.T, repo user.Repository, uname, pwd string, roles []string, isActive bool) user.User {
	t.Helper()

	usr := user.User{
		Name:     uname,
		Username: uname,
		Email:    uname + "@test.cd",
		Roles:    roles,
		IsActive: isActive,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func Test_authenticate(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr := createUser(t, repo, "jojo", "LeTests123", nil, true)
	deactivated := createUser(t, repo, "momo", "LeTests123", nil, false)

	tests := []struct {
		name    string
		uname   string
		pwd     string
		wantErr error
	}{
		{name: "unknown user", uname: "ghost", pwd: "LeTests123", wantErr: errAuthenticationFailed},
		{name: "wrong password", uname: usr.Username, pwd: "n0pe", wantErr: errAuthenticationFailed},
		{name: "deactivated account", uname: deactivated.Username, pwd: "LeTests123", wantErr: errAccountDeactivated},
		{name: "by username", uname: usr.Username, pwd: "LeTests123"},
		{name: "by email", uname: usr.Email, pwd: "LeTests123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := authenticate(ctx, tt.uname, tt.pwd, svc)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("authenticate() error = %v; wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if claims.Subject != usr.ID {
				t.Errorf("authenticate() subject = %v; want %v", claims.Subject, usr.ID)
			}
			if claims.ExpiresAt <= time.Now().Unix() {
				t.Error("authenticate() claims already expired")
			}
		})
	}

	// the successful logins above must have recorded lastLogin
	usr, err := repo.GetUserByID(ctx, usr.ID)
	if err != nil {
		t.Fatalf("GetUserByID() failed: %v", err)
	}
	if usr.LastLogin.IsZero() {
		t.Error("authenticate() did not set lastLogin")
	}
}

func TestClaims_IsStaff(t *testing.T) {
	_, repo := setup(t)

	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{name: "learner", roles: nil, want: false},
		{name: "editor", roles: user.EditorRoles, want: true},
		{name: "admin", roles: []string{user.RoleAdmin}, want: true},
		{name: "admin owner", roles: []string{user.RoleAdminOwner}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr := createUser(t, repo, "staff"+tt.name, "", tt.roles, true)
			claims := GetUserClaims(usr)
			if got := claims.IsStaff(); got != tt.want {
				t.Errorf("IsStaff() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	_, repo := setup(t)

	usr := createUser(t, repo, "tokusr", "", nil, true)
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if token == "" {
		t.Error("GenerateToken() returned an empty token")
	}
}
