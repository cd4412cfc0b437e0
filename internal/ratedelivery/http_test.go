package ratedelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/pkg/currencypkg"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestGet(t *testing.T) {
	rates := fx.DefaultTable()

	testCases := []struct {
		name           string
		buildStubs     func(rateService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			buildStubs: func(rateService *MockService) {
				rateService.EXPECT().
					Get(gomock.Any()).
					Times(1).
					Return(rates, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InternalServerError",
			buildStubs: func(rateService *MockService) {
				rateService.EXPECT().
					Get(gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
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
			rateService := NewMockService(ctrl)
			rateHandler := NewHandler(rateService)

			server := gin.New()
			server.GET("/rates", rateHandler.Get)

			tc.buildStubs(rateService)

			req, err := http.NewRequest(http.MethodGet, "/rates", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Rates fx.Table `json:"rates"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*struct {
				Rates fx.Table `json:"rates"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			if diff := cmp.Diff(rates, got.Rates); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSet(t *testing.T) {
	partial := map[string]float64{currencypkg.USD: 1.1}
	merged := fx.DefaultTable()
	merged[currencypkg.USD] = 1.1

	testCases := []struct {
		name           string
		requestBody    map[string]any
		buildStubs     func(rateService *MockService)
		wantStatusCode int
	}{
		{
			name:        "OK",
			requestBody: map[string]any{"rates": partial},
			buildStubs: func(rateService *MockService) {
				rateService.EXPECT().
					Merge(gomock.Any(), gomock.Eq(partial)).
					Times(1).
					Return(merged, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MissingRates",
			requestBody: map[string]any{},
			buildStubs: func(rateService *MockService) {
				rateService.EXPECT().
					Merge(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "InternalServerError",
			requestBody: map[string]any{"rates": partial},
			buildStubs: func(rateService *MockService) {
				rateService.EXPECT().
					Merge(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			rateService := NewMockService(ctrl)
			rateHandler := NewHandler(rateService)

			server := gin.New()
			server.PUT("/rates", rateHandler.Set)

			tc.buildStubs(rateService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPut, "/rates", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			res := web.Response{
				Data: &struct {
					Rates fx.Table `json:"rates"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			got, ok := res.Data.(*struct {
				Rates fx.Table `json:"rates"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			if diff := cmp.Diff(merged, got.Rates); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
