package sessiondelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/randompkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestLogin(t *testing.T) {
	password := randompkg.String(12)
	token := randompkg.String(32)
	expiresAt := time.Now().Add(time.Minute).UTC().Truncate(time.Second)

	testCases := []struct {
		name           string
		requestBody    map[string]any
		buildStubs     func(sessionService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: map[string]any{"password": password},
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					Login(gomock.Any(), gomock.Eq(password)).
					Times(1).
					Return(token, expiresAt, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MissingPassword",
			requestBody: map[string]any{},
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "WrongPassword",
			requestBody: map[string]any{"password": password},
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					Login(gomock.Any(), gomock.Eq(password)).
					Times(1).
					Return("", time.Time{}, domain.ErrWrongPassword)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      domain.ErrWrongPassword.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: map[string]any{"password": password},
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					Login(gomock.Any(), gomock.Eq(password)).
					Times(1).
					Return("", time.Time{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sessionService := NewMockService(ctrl)
			sessionHandler := NewHandler(sessionService)

			server := gin.New()
			server.POST("/sessions", sessionHandler.Login)

			tc.buildStubs(sessionService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode == http.StatusOK {
				if res.AccessToken != token {
					t.Errorf("res.AccessToken=%q, want %q", res.AccessToken, token)
				}

				if res.AccessTokenExpiresAt != expiresAt.Format(time.RFC3339) {
					t.Errorf("res.AccessTokenExpiresAt=%q, want %q", res.AccessTokenExpiresAt, expiresAt.Format(time.RFC3339))
				}

				return
			}

			if tc.wantError != "" && res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}
