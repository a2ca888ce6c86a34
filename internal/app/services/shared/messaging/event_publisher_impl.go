package messaging

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Connection *amqp091.Connection
	QueueName  string
}

type appointmentEvent struct {
	Event         string `json:"event"`
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	DateKey       string `json:"slotDate"`
	TimeLabel     string `json:"slotTime"`
	Amount        int    `json:"amount"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurredAt"`
}

func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string) contracts.EventPublisher {
	return &rabbitMQPublisher{
		Connection: connection,
		QueueName:  queueName,
	}
}

func (p *rabbitMQPublisher) PublishAppointmentEvent(ctx context.Context, event string, appointment *models.Appointment) error {
	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.QueueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	body, err := json.Marshal(appointmentEvent{
		Event:         event,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		DateKey:       appointment.DateKey,
		TimeLabel:     appointment.TimeLabel,
		Amount:        appointment.Amount,
		Status:        appointment.Status,
		OccurredAt:    time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	err = channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}
	return nil
}
