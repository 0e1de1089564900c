package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	echoapi "github.com/mwendwa/elimika/apps/api/echo"
	"github.com/mwendwa/elimika/core"
	"github.com/mwendwa/elimika/core/cluster"
	"github.com/mwendwa/elimika/core/user"
	emailsvc "github.com/mwendwa/elimika/services/email"
	testutil "github.com/mwendwa/elimika/tests"
)

func Test_userApi_query(t *testing.T) {
	app := setup(t)

	path := func(search string, isActive *bool, roles ...string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if isActive != nil {
			v.Add("is_active", strconv.FormatBool(*isActive))
		}
		for _, r := range roles {
			v.Add("role", r)
		}
		return "/v1/users?" + v.Encode()
	}
	bPtr := func(b bool) *bool { return &b }

	usr1 := testutil.CreateUser(t, usrRepo, "User", "awe", "awe@test.ke", "", nil, true)
	usr2 := testutil.CreateUser(t, usrRepo, "King", "user02", "king@test.ke", "", nil, true)
	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin", "admin@test.ke", "", []string{user.RoleAdmin}, true)
	mentorUsr := testutil.CreateUser(t, usrRepo, "Mentor", "mentor", "mentor@test.ke", "", []string{user.RoleMentor}, true)
	naughty := testutil.CreateUser(t, usrRepo, "N Dog", "ndog", "ndog@test.ke", "", []string{user.RoleStudent}, false)

	adminToken := getToken(t, admin)
	empty := marchallList(t)

	tests := []httpTest{
		{name: "Auth required", path: "/v1/users", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", path: "/v1/users", token: getToken(t, student), wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "Get all", path: "/v1/users", token: adminToken,
			wantData: marchallList(t, usr1, usr2, student, admin, mentorUsr, naughty),
		},
		// filtering
		{name: "search (unknown)", path: path("lol", nil), token: adminToken, wantData: empty},
		{
			name: "search=USE", path: path("USE", nil),
			token: adminToken, wantData: marchallList(t, usr1, usr2, student),
		},
		{name: "role (unknown)", path: path("", nil, "lol"), token: adminToken, wantData: empty},
		{
			name: "role=admin:", path: path("", nil, user.RoleAdmin),
			token: adminToken, wantData: marchallList(t, admin),
		},
		{
			name: "role=mentor:,student:", path: path("", nil, user.RoleMentor, user.RoleStudent),
			token: adminToken, wantData: marchallList(t, student, mentorUsr, naughty),
		},
		{
			name: "is_active=true", path: path("", bPtr(true)),
			token: adminToken, wantData: marchallList(t, usr1, usr2, student, admin, mentorUsr),
		},
		{name: "is_active=false", path: path("", bPtr(false)), token: adminToken, wantData: marchallList(t, naughty)},
		{
			name: "combo", path: path("USE", bPtr(true), user.RoleStudent),
			token: adminToken, wantData: marchallList(t, student),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_login(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "LolC@t123", []string{user.RoleStudent}, true)
	testutil.CreateUser(t, usrRepo, "N Dog", "ndog", "ndog@test.ke", "LolC@t123", []string{user.RoleStudent}, false)

	tests := []httpTest{
		{
			name: "unknown user", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.LoginRequest{Username: "lol", Password: "lol"}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "wrong password", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.LoginRequest{Username: student.Username, Password: "lol"}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "inactive user", wantCode: http.StatusForbidden,
			body:     marchallObj(t, echoapi.LoginRequest{Username: "ndog", Password: "LolC@t123"}),
			wantData: marchallObj(t, httpErr{Error: "account deactivated"}),
		},
		{
			name: "login with username", wantCode: http.StatusOK,
			body: marchallObj(t, echoapi.LoginRequest{Username: student.Username, Password: "LolC@t123"}),
		},
		{
			name: "login with email", wantCode: http.StatusOK,
			body: marchallObj(t, echoapi.LoginRequest{Username: student.Email, Password: "LolC@t123"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/users/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			// cannot guess the token.. just check that it's not empty
			if tt.wantCode == http.StatusOK {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData echoapi.LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Errorf("json.Unmarshal() failed! err %v", err)
				}
				if respData.Token == "" {
					t.Error("failed! empty token")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_register(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name: "password mismatch", wantCode: http.StatusBadRequest,
			body: marchallObj(t, user.NewUser{
				Name: "Amina", Username: "amina", Email: "amina@test.ke",
				Password: "LolC@t123", PasswordConfirm: "nope",
			}),
		},
		{
			name: "weak password", wantCode: http.StatusBadRequest,
			body: marchallObj(t, user.NewUser{
				Name: "Amina", Username: "amina", Email: "amina@test.ke",
				Password: "lol", PasswordConfirm: "lol",
			}),
		},
		{
			name: "registered as student", wantCode: http.StatusCreated,
			body: marchallObj(t, user.NewUser{
				Name: "Amina", Username: "amina", Email: "amina@test.ke",
				Password: "LolC@t123", PasswordConfirm: "LolC@t123",
				Roles: []string{user.RoleAdmin}, // must be ignored
			}),
		},
		{
			name: "duplicate username", wantCode: http.StatusBadRequest,
			body: marchallObj(t, user.NewUser{
				Name: "Amina 2", Username: "amina", Email: "amina2@test.ke",
				Password: "LolC@t123", PasswordConfirm: "LolC@t123",
			}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/users/register"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			if tt.wantCode == http.StatusCreated {
				usr, err := usrRepo.GetUserByUsername("amina")
				if err != nil {
					t.Fatalf("GetUserByUsername() failed, %v", err)
				}
				if usr.IsAdmin() {
					t.Error("self-registration must not grant admin")
				}
				if !usr.IsStudent() {
					t.Error("self-registration must default to a student account")
				}
			}
		})
	}
}

func Test_userApi_me(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "LolC@t123", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	t.Run("retrieve self", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, student)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/users/me", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("save profile grades", func(t *testing.T) {
		body := marchallObj(t, user.UpdateUser{
			Profile: &user.Profile{
				School:   "Alliance High School",
				County:   "Kiambu",
				KCSEYear: 2023,
				Grades: map[string]cluster.Grade{
					"maths":     cluster.GradeA,
					"english":   cluster.GradeBPlus,
					"physics":   cluster.GradeAMinus,
					"chemistry": cluster.GradeB,
				},
			},
		})
		req, rec := newAuthRequest(http.MethodPut, "/v1/users/me", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
		}

		refreshed, err := usrRepo.GetUserByID(student.ID)
		if err != nil {
			t.Fatalf("GetUserByID() failed, %v", err)
		}
		if refreshed.Profile.School != "Alliance High School" {
			t.Errorf("Profile.School = %q; want %q", refreshed.Profile.School, "Alliance High School")
		}
		if got := refreshed.Profile.Grades["maths"]; got != cluster.GradeA {
			t.Errorf("Profile.Grades[maths] = %q; want %q", got, cluster.GradeA)
		}
	})

	t.Run("unknown subject rejected", func(t *testing.T) {
		body := marchallObj(t, user.UpdateUser{
			Profile: &user.Profile{Grades: map[string]cluster.Grade{"alchemy": cluster.GradeA}},
		})
		req, rec := newAuthRequest(http.MethodPut, "/v1/users/me", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("admin-only fields rejected", func(t *testing.T) {
		body := marchallObj(t, user.UpdateUser{Roles: []string{user.RoleAdmin}})
		req, rec := newAuthRequest(http.MethodPut, "/v1/users/me", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("failed! code = %v; want %v", rec.Code, http.StatusForbidden)
		}
	})
}

func Test_userApi_refreshToken(t *testing.T) {
	app := setup(t)

	naughty := testutil.CreateUser(t, usrRepo, "N Dog", "ndog", "ndog@test.ke", "", []string{user.RoleStudent}, false)
	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)

	now := time.Now()
	unrefreshableClaims := &echoapi.Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   strconv.Itoa(student.ID),
			Audience:  "Students",
			ExpiresAt: now.Add(core.Conf.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		OrigIssuedAt: now.Add(-2 * core.Conf.JWTRefreshExpirationDelta).Unix(), // older than threshold
		IsStudent:    student.IsStudent(),
		IsMentor:     student.IsMentor(),
		IsAdmin:      student.IsAdmin(),
		Roles:        student.Roles,
	}
	unrefreshableToken, err := echoapi.GenerateToken(unrefreshableClaims)
	if err != nil {
		t.Fatalf("GenerateToken(): %v", err)
	}

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Inactive user not allowed", token: getToken(t, naughty), wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "account deactivated"})},
		{name: "Refresh period expired", token: unrefreshableToken, wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "refresh has expired"})},
		{name: "Token refreshed", token: getToken(t, student), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/users/token-refresh"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			// cannot guess new token.. just check that it's not empty
			if tt.wantCode == http.StatusOK {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData echoapi.LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Errorf("json.Unmarshal() failed! err %v", err)
				}
				if respData.Token == "" {
					t.Error("failed! empty token")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_resetPassword(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	successData := marchallObj(t, echoapi.SuccessResponse{Success: "If the email address supplied is associated with an active account on this system, " +
		"an email will arrive in your inbox shortly with instructions to reset your password."})

	pathRegex, err := regexp.Compile("/password-reset/.+/.+")
	if err != nil {
		t.Fatalf("regexp.Compile(): %v", err)
	}

	type extraTest struct {
		emailSent bool
		to        mail.Address
	}
	tests := []httpTest{
		{
			name: "unknown email", wantCode: http.StatusOK, body: marchallObj(t, echoapi.PasswordResetRequest{Email: "lol@test.com"}),
			wantData: successData, extra: extraTest{emailSent: false},
		},
		{
			name: "known email", wantCode: http.StatusOK, body: marchallObj(t, echoapi.PasswordResetRequest{Email: student.Email}),
			wantData: successData, extra: extraTest{emailSent: true, to: mail.Address{Name: student.Name, Address: student.Email}},
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/users/password-reset"

		t.Run(tt.name, func(t *testing.T) {
			emailsvc.SentMessages = nil // reset

			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if extra, ok := tt.extra.(extraTest); ok {
				if extra.emailSent {
					if len(emailsvc.SentMessages) != 1 {
						t.Fatalf("failed! len(SentMessages) = %d; want 1", len(emailsvc.SentMessages))
					}
					msg := emailsvc.SentMessages[0]
					if msg.To[0] != extra.to {
						t.Errorf("failed! To = %v; want %v", msg.To[0], extra.to)
					}
					if !strings.Contains(msg.TextContent, extra.to.Name) {
						t.Errorf("failed! text content does not contain recipient's name \"%s\"", extra.to.Name)
					}
					if !pathRegex.MatchString(msg.TextContent) {
						t.Errorf("failed! text content does not match pathRegex %v", pathRegex)
					}
				} else {
					if len(emailsvc.SentMessages) > 0 {
						t.Errorf("failed! len(SentMessages) = %d; want 0", len(emailsvc.SentMessages))
					}
				}
			}
		})
	}
}

func Test_userApi_confirmPasswordReset(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "lol", []string{user.RoleStudent}, true)
	validUID := user.EncodeUID(student)
	validToken := user.MakeToken(student)

	// generate an expired token
	dayLate := core.Conf.PasswordResetTimeoutDelta + (24 * time.Hour)
	user.NowFunc = func() time.Time { return time.Now().Add(-dayLate) }
	expiredToken := user.MakeToken(student)
	user.NowFunc = time.Now // reset

	tests := []httpTest{
		{
			name: "invalid pwd: min len", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.ResetUserPassword{Token: "lol", UID: "lol", Password: "lol", PasswordConfirm: "lol"}),
			wantData: marchallObj(t, map[string]string{"password": "password must contain at least 8 characters"}),
		},
		{
			name: "invalid pwd: complexity", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.ResetUserPassword{Token: "lol", UID: "lol", Password: "lol12345", PasswordConfirm: "lol12345"}),
			wantData: marchallObj(t, map[string]string{"password": "password must contain at least 1 uppercase character, 1 lowercase character, 1 digit and 1 special character"}),
		},
		{
			name: "invalid uid", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.ResetUserPassword{Token: "lol", UID: "?!", Password: "LolC@t123", PasswordConfirm: "LolC@t123"}),
			wantData: marchallObj(t, httpErr{Error: "invalid token"}),
		},
		{
			name: "user not found", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.ResetUserPassword{Token: "lol", UID: "OTk5", Password: "LolC@t123", PasswordConfirm: "LolC@t123"}),
			wantData: marchallObj(t, httpErr{Error: "invalid token"}),
		},
		{
			name: "invalid token", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.ResetUserPassword{Token: "HE4TS-sigsig-sig", UID: validUID, Password: "LolC@t123", PasswordConfirm: "LolC@t123"}),
			wantData: marchallObj(t, httpErr{Error: "invalid token"}),
		},
		{
			name: "expired token", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.ResetUserPassword{Token: expiredToken, UID: validUID, Password: "LolC@t123", PasswordConfirm: "LolC@t123"}),
			wantData: marchallObj(t, httpErr{Error: "token expired"}),
		},
		{
			name: "valid token", wantCode: http.StatusOK,
			body:     marchallObj(t, user.ResetUserPassword{Token: validToken, UID: validUID, Password: "LolC@t123", PasswordConfirm: "LolC@t123"}),
			wantData: marchallObj(t, echoapi.SuccessResponse{Success: "Password has been reset with the new password."}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/users/password-reset-confirm"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				refreshed, err := usrRepo.GetUserByID(student.ID)
				if err != nil {
					t.Fatalf("GetUserByID() failed, %v", err)
				}
				if bytes.Equal(refreshed.PasswordHash, student.PasswordHash) {
					t.Fatalf("failed to update new password")
				}
			}
		})
	}
}
