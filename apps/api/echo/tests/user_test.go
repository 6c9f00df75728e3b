package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/maneno/apps/api/echo"
	"github.com/trezcool/maneno/core/user"
)

const testPassword = "LeTests123"

func Test_user_login(t *testing.T) {
	usr := createUser(t, "loginusr", "loginusr@test.cd", testPassword, nil)
	inactive := createUser(t, "logininactive", "logininactive@test.cd", testPassword, nil)
	inactive.IsActive = false
	isActive := false
	if _, err := usrRepo.UpdateUser(context.Background(), inactive, &isActive); err != nil {
		t.Fatalf("UpdateUser(): %v", err)
	}

	tests := []httpTest{
		{
			name:     "login by username",
			body:     marchallObj(t, echoapi.LoginRequest{Username: usr.Username, Password: testPassword}),
			wantCode: http.StatusOK,
		},
		{
			name:     "login by email",
			body:     marchallObj(t, echoapi.LoginRequest{Username: usr.Email, Password: testPassword}),
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown user",
			body:     marchallObj(t, echoapi.LoginRequest{Username: "nobody", Password: testPassword}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name:     "wrong password",
			body:     marchallObj(t, echoapi.LoginRequest{Username: usr.Username, Password: "n0pe!"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name:     "deactivated account",
			body:     marchallObj(t, echoapi.LoginRequest{Username: inactive.Username, Password: testPassword}),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "account deactivated"}),
		},
		{
			name:     "missing credentials",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/login", tt.body)
			app.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantData != nil {
				checkCodeAndData(t, tt, rec)
				return
			}
			if tt.wantCode == http.StatusOK {
				var resp echoapi.LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
			}
		})
	}

	// a successful login records lastLogin
	loggedIn, err := usrRepo.GetUserByID(context.Background(), usr.ID)
	require.NoError(t, err)
	assert.False(t, loggedIn.LastLogin.IsZero())
}

func Test_user_tokenRefresh(t *testing.T) {
	usr := createUser(t, "refreshusr", "refreshusr@test.cd", testPassword, nil)
	token := getToken(t, usr)

	req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp echoapi.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// no token
	req, rec = newRequest(http.MethodPost, "/v1/users/token-refresh")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	// a deactivated account cannot refresh
	isActive := false
	usr.IsActive = false
	if _, err := usrRepo.UpdateUser(context.Background(), usr, &isActive); err != nil {
		t.Fatalf("UpdateUser(): %v", err)
	}
	req, rec = newAuthRequest(http.MethodPost, "/v1/users/token-refresh", token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusForbidden,
		wantData: marchallObj(t, httpErr{Error: "account deactivated"}),
	}, rec)
}

func Test_user_register_permissions(t *testing.T) {
	admin := createUser(t, "regadmin", "regadmin@test.cd", testPassword, user.AdminRoles)
	editor := createUser(t, "regeditor", "regeditor@test.cd", testPassword, user.EditorRoles)
	adminToken := getToken(t, admin)
	editorToken := getToken(t, editor)

	// register goes through the full password policy, unlike fixtures
	// created straight on the repository
	regPassword := "G0y@ves&Mang0es"

	newUsr := func(uname string, roles []string) []byte {
		return marchallObj(t, user.NewUser{
			Name:            uname,
			Username:        uname,
			Email:           uname + "@test.cd",
			Password:        regPassword,
			PasswordConfirm: regPassword,
			Roles:           roles,
		})
	}

	tests := []httpTest{
		{
			name:     "anonymous cannot register",
			body:     newUsr("regnew1", nil),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "editor cannot register",
			body:     newUsr("regnew2", nil),
			token:    editorToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "admin registers a learner",
			body:     newUsr("regnew3", nil),
			token:    adminToken,
			wantCode: http.StatusCreated,
		},
		{
			name:     "admin registers an editor",
			body:     newUsr("regnew4", user.EditorRoles),
			token:    adminToken,
			wantCode: http.StatusCreated,
		},
		{
			name:     "duplicate username",
			body:     newUsr("regnew3", nil),
			token:    adminToken,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/users/register", tt.token, tt.body)
			app.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantData != nil {
				checkCodeAndData(t, tt, rec)
			}
		})
	}
}

func Test_user_query_adminOnly(t *testing.T) {
	admin := createUser(t, "qryadmin", "qryadmin@test.cd", testPassword, user.AdminRoles)
	learner := createUser(t, "qrylearner", "qrylearner@test.cd", testPassword, nil)

	req, rec := newAuthRequest(http.MethodGet, "/v1/users", getToken(t, learner))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusForbidden,
		wantData: marchallObj(t, httpErr{Error: "permission denied"}),
	}, rec)

	req, rec = newAuthRequest(http.MethodGet, "/v1/users", getToken(t, admin))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.GreaterOrEqual(t, len(users), 2)
}

func Test_user_retrieve(t *testing.T) {
	admin := createUser(t, "retadmin", "retadmin@test.cd", testPassword, user.AdminRoles)
	learner := createUser(t, "retlearner", "retlearner@test.cd", testPassword, nil)
	other := createUser(t, "retother", "retother@test.cd", testPassword, nil)

	// self
	req, rec := newAuthRequest(http.MethodGet, "/v1/users/"+learner.ID, getToken(t, learner))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, learner.ID, got.ID)

	// another user's detail does not exist for a non-admin
	req, rec = newAuthRequest(http.MethodGet, "/v1/users/"+other.ID, getToken(t, learner))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// admin sees anyone
	req, rec = newAuthRequest(http.MethodGet, "/v1/users/"+other.ID, getToken(t, admin))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_user_update(t *testing.T) {
	admin := createUser(t, "updadmin", "updadmin@test.cd", testPassword, user.AdminRoles)
	learner := createUser(t, "updlearner", "updlearner@test.cd", testPassword, nil)

	// self update of the name is allowed
	req, rec := newAuthRequest(http.MethodPut, "/v1/users/"+learner.ID, getToken(t, learner),
		[]byte(`{"name":"New Name"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "New Name", got.Name)

	// non-admins cannot touch roles or isActive
	req, rec = newAuthRequest(http.MethodPut, "/v1/users/"+learner.ID, getToken(t, learner),
		[]byte(`{"roles":["editor:"]}`))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodPut, "/v1/users/"+learner.ID, getToken(t, learner),
		[]byte(`{"isActive":false}`))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// admin promotes the learner to editor
	req, rec = newAuthRequest(http.MethodPut, "/v1/users/"+learner.ID, getToken(t, admin),
		[]byte(`{"roles":["editor:"]}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.IsEditor())
}

func Test_user_destroy(t *testing.T) {
	admin := createUser(t, "deladmin", "deladmin@test.cd", testPassword, user.AdminRoles)
	victim := createUser(t, "delvictim", "delvictim@test.cd", testPassword, nil)
	adminToken := getToken(t, admin)

	// admins cannot delete themselves
	req, rec := newAuthRequest(http.MethodDelete, "/v1/users/"+admin.ID, adminToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusForbidden,
		wantData: marchallObj(t, httpErr{Error: "permission denied"}),
	}, rec)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/users/"+victim.ID, adminToken)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := usrRepo.GetUserByID(context.Background(), victim.ID)
	assert.Equal(t, user.ErrNotFound, err)
}

// Error responses keep their structured {"error": ...} body in test mode;
// raw wrapped error strings must never leak into them.
func Test_api_errorBodiesAreStructured(t *testing.T) {
	learner := createUser(t, "bodieslearner", "bodieslearner@test.cd", testPassword, nil)

	tests := []httpTest{
		{
			name:     "missing token",
			method:   http.MethodPost,
			path:     "/v1/users/token-refresh",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "permission denied",
			method:   http.MethodGet,
			path:     "/v1/users",
			token:    getToken(t, learner),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "authentication failed",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     marchallObj(t, echoapi.LoginRequest{Username: "nobody", Password: "n0pe"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_user_queryRoles(t *testing.T) {
	admin := createUser(t, "rolesadmin", "rolesadmin@test.cd", testPassword, user.AdminRoles)

	req, rec := newAuthRequest(http.MethodGet, "/v1/users/roles", getToken(t, admin))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, user.Roles)}, rec)
}

func Test_user_passwordReset(t *testing.T) {
	createUser(t, "resetusr", "resetusr@test.cd", testPassword, nil)

	// the response is the same whether the account exists or not
	for _, email := range []string{"resetusr@test.cd", "ghost@test.cd"} {
		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset",
			marchallObj(t, echoapi.PasswordResetRequest{Email: email}))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp echoapi.SuccessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Success)
	}
}
