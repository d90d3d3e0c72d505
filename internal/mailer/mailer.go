package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// job is one queued notification.
type job struct {
	to        string
	patientID string
}

// Mailer sends the patient-created email from a background worker.
// Dispatch is fire-and-forget: a full queue or a failed send is logged
// and dropped, nothing on the request path waits for delivery.
type Mailer struct {
	jobs   chan job
	dialer *gomail.Dialer
	from   string
}

// New builds a mailer from SMTP settings. An empty host disables sending
// entirely (local development without a mail server).
func New(host string, port int, user, pass string) *Mailer {
	m := &Mailer{
		jobs: make(chan job, 64),
		from: user,
	}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, user, pass)
	}
	return m
}

// Start launches the background worker.
func (m *Mailer) Start() {
	go func() {
		for j := range m.jobs {
			m.send(j)
		}
	}()
}

// NotifyPatientCreated queues the email without blocking the caller.
func (m *Mailer) NotifyPatientCreated(doctorEmail, patientID string) {
	select {
	case m.jobs <- job{to: doctorEmail, patientID: patientID}:
	default:
		log.Println("mail queue full, dropping notification for patient", patientID)
	}
}

func (m *Mailer) send(j job) {
	if m.dialer == nil {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", j.to)
	msg.SetHeader("Subject", "New Patient Created")
	msg.SetBody("text/plain", fmt.Sprintf("A new patient (ID: %s) was created.", j.patientID))

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("failed to send patient-created mail to %s: %v", j.to, err)
	}
}
