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
	"github.com/adampos/tipstation/services/terminal/mocks"
)

func newWebhookContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/square", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlePaymentNotification_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	mockUC.EXPECT().
		HandlePaymentUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, event *models.PaymentWebhookEvent) error {
			assert.Equal(t, models.PaymentEventTypeUpdated, event.Type)
			assert.Equal(t, "COMPLETED", event.Data.Object.Payment.Status)
			assert.Equal(t, "trans-1", event.Data.Object.Payment.ReferenceID)
			return nil
		})

	body := `{"type":"payment.updated","data":{"object":{"payment":{"status":"COMPLETED","reference_id":"trans-1"}}}}`
	c, rec := newWebhookContext(body)

	err := handler.HandlePaymentNotification(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePaymentNotification_MalformedBodyStillAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	c, rec := newWebhookContext(`{not json`)

	err := handler.HandlePaymentNotification(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePaymentNotification_UsecaseErrorStillAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCheckoutUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	mockUC.EXPECT().
		HandlePaymentUpdate(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	body := `{"type":"payment.updated","data":{"object":{"payment":{"status":"COMPLETED","reference_id":"trans-1"}}}}`
	c, rec := newWebhookContext(body)

	err := handler.HandlePaymentNotification(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
