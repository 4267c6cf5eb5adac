package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/mocks"
)

func TestHandleCreateCharacter(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		accountID      int64
		setupMock      func(*mocks.MockCharacterService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: CreateCharacterRequest{Name: "Hero"},
			accountID:   testAccountID,
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("Create", mock.Anything, testAccountID, "Hero").
					Return(&domain.Character{ID: testCharacterID, AccountID: testAccountID, Name: "Hero"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"character_id":42`,
		},
		{
			name:           "Missing Name",
			requestBody:    CreateCharacterRequest{},
			accountID:      testAccountID,
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"name"`,
		},
		{
			name:        "Name Taken",
			requestBody: CreateCharacterRequest{Name: "Hero"},
			accountID:   testAccountID,
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("Create", mock.Anything, testAccountID, "Hero").Return(nil, domain.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "No Caller",
			requestBody:    CreateCharacterRequest{Name: "Hero"},
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			mockSvc := mocks.NewMockCharacterService(t)
			tt.setupMock(mockSvc)
			req := newRequest(t, http.MethodPost, "/api/v1/characters", tt.requestBody, tt.accountID, nil)
			w := httptest.NewRecorder()

			// ACT
			HandleCreateCharacter(mockSvc).ServeHTTP(w, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetCharacter(t *testing.T) {
	money := 10000

	t.Run("owner sees money", func(t *testing.T) {
		// ARRANGE
		mockSvc := mocks.NewMockCharacterService(t)
		mockSvc.On("Get", mock.Anything, testCharacterID, testAccountID).Return(&domain.CharacterView{
			ID: testCharacterID, Name: "Hero", Stats: domain.BaseStats(), Money: &money,
		}, nil)
		req := newRequest(t, http.MethodGet, "/api/v1/characters/42", nil, testAccountID, characterParams("42"))
		w := httptest.NewRecorder()

		// ACT
		HandleGetCharacter(mockSvc).ServeHTTP(w, req)

		// ASSERT
		require.Equal(t, http.StatusOK, w.Code)
		var view domain.CharacterView
		decodeData(t, w, &view)
		assert.Equal(t, "Hero", view.Name)
		require.NotNil(t, view.Money)
		assert.Equal(t, 10000, *view.Money)
	})

	t.Run("other caller sees no money", func(t *testing.T) {
		mockSvc := mocks.NewMockCharacterService(t)
		mockSvc.On("Get", mock.Anything, testCharacterID, int64(99)).Return(&domain.CharacterView{
			ID: testCharacterID, Name: "Hero", Stats: domain.BaseStats(),
		}, nil)
		req := newRequest(t, http.MethodGet, "/api/v1/characters/42", nil, 99, characterParams("42"))
		w := httptest.NewRecorder()

		HandleGetCharacter(mockSvc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"money"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := mocks.NewMockCharacterService(t)
		mockSvc.On("Get", mock.Anything, testCharacterID, testAccountID).Return(nil, domain.ErrCharacterNotFound)
		req := newRequest(t, http.MethodGet, "/api/v1/characters/42", nil, testAccountID, characterParams("42"))
		w := httptest.NewRecorder()

		HandleGetCharacter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	for _, raw := range []string{"abc", "0", "-4", ""} {
		t.Run("bad id "+raw, func(t *testing.T) {
			mockSvc := mocks.NewMockCharacterService(t)
			req := newRequest(t, http.MethodGet, "/api/v1/characters/x", nil, testAccountID, characterParams(raw))
			w := httptest.NewRecorder()

			HandleGetCharacter(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), ErrMsgInvalidCharacterID)
		})
	}
}

func TestHandleDeleteCharacter(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{"Success", nil, http.StatusOK, MsgCharacterDeleted},
		{"Not Owner", domain.ErrForbidden, http.StatusForbidden, ErrMsgForbiddenError},
		{"Not Found", domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			mockSvc := mocks.NewMockCharacterService(t)
			mockSvc.On("Delete", mock.Anything, testCharacterID, testAccountID).Return(tt.serviceErr)
			req := newRequest(t, http.MethodDelete, "/api/v1/characters/42", nil, testAccountID, characterParams("42"))
			w := httptest.NewRecorder()

			// ACT
			HandleDeleteCharacter(mockSvc).ServeHTTP(w, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
