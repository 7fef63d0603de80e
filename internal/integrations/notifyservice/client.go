package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним сервисом уведомлений
// Отправка уведомлений никогда не блокирует бизнес-операцию: при недоступности
// сервиса клиент возвращает ErrServiceDegraded, который вызывающий код только логирует
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAppointmentCreated отправляет уведомление о созданной записи
func (c *Client) SendAppointmentCreated(ctx context.Context, notification *AppointmentNotification) error {
	if err := c.post(ctx, "/internal/notifications/appointment-created", notification); err != nil {
		c.log.Error("NotifyService unavailable, appointment_id=%d will not be notified: %v",
			notification.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, notification.AppointmentID, err)
	}

	c.log.Info("Appointment notification sent: appointment_id=%d, client_id=%d",
		notification.AppointmentID, notification.ClientID)
	return nil
}

// SendAppointmentCancelled отправляет уведомление об отмене записи
func (c *Client) SendAppointmentCancelled(ctx context.Context, notification *CancellationNotification) error {
	if err := c.post(ctx, "/internal/notifications/appointment-cancelled", notification); err != nil {
		c.log.Error("NotifyService unavailable, cancellation of appointment_id=%d will not be notified: %v",
			notification.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, notification.AppointmentID, err)
	}

	c.log.Info("Cancellation notification sent: appointment_id=%d, client_id=%d",
		notification.AppointmentID, notification.ClientID)
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
