package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/services/terminal"
	"github.com/adampos/tipstation/services/terminal/mocks"
)

func newCheckoutContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/checkouts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCharge_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewCheckoutHandler(mockUC)

	mockUC.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.ChargeRequest) (*models.TerminalCheckout, error) {
			assert.Equal(t, "5.25", req.Amount)
			return &models.TerminalCheckout{
				IdempotencyKey: "trans-1",
				Amount:         525,
				Status:         models.CheckoutStatusPending,
			}, nil
		})

	c, rec := newCheckoutContext(`{"amount":"5.25"}`)
	err := handler.Charge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "trans-1")
}

func TestCharge_InvalidAmountReturns400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewCheckoutHandler(mockUC)

	mockUC.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		Return(nil, terminal.ErrInvalidAmount)

	c, rec := newCheckoutContext(`{"amount":"abc"}`)
	err := handler.Charge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCharge_NotPairedReturns409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewCheckoutHandler(mockUC)

	mockUC.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		Return(nil, terminal.ErrDeviceNotPaired)

	c, rec := newCheckoutContext(`{"amount":"5"}`)
	err := handler.Charge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCharge_ProcessorErrorReturns502(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewCheckoutHandler(mockUC)

	mockUC.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		Return(nil, terminal.ErrProcessorRequest)

	c, rec := newCheckoutContext(`{"amount":"5"}`)
	err := handler.Charge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetCurrent_Active(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewCheckoutHandler(mockUC)

	mockUC.EXPECT().Current().Return(&models.TerminalCheckout{
		IdempotencyKey: "trans-1",
		Status:         models.CheckoutStatusCompleted,
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/checkouts/current", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetCurrent(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPLETED")
}

func TestGetCurrent_Idle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewCheckoutHandler(mockUC)

	mockUC.EXPECT().Current().Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/checkouts/current", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetCurrent(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
