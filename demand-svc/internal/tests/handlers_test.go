package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodcart/demand-svc/internal/api/http"
	"foodcart/demand-svc/internal/domain"
	"foodcart/demand-svc/internal/mocks"
	"foodcart/demand-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLeaderboardHandlers(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(*mocks.StoreInterface)
		wantCode  int
		wantBody  string
	}{
		{
			name: "today",
			path: "/api/demand/today",
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopToday", mock.Anything, 10).
					Return([]domain.ProductDemand{{ProductID: 1, Score: 7}}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[{"product_id":1,"score":7}]`,
		},
		{
			name: "all time empty",
			path: "/api/demand/alltime",
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopAllTime", mock.Anything, 10).Return(nil, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name: "redis error",
			path: "/api/demand/today",
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopToday", mock.Anything, 10).Return(nil, errors.New("redis down")).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMock(mockStore)
			handler := httpapi.NewHandler(service.NewLeaderboard(mockStore))

			req := httptest.NewRequest("GET", testCase.path, nil)
			w := httptest.NewRecorder()

			r := mux.NewRouter()
			handler.RegisterRoutes(r)
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.JSONEq(t, testCase.wantBody, w.Body.String())
		})
	}
}
