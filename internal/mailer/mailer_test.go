package mailer

import "testing"

func TestNotifyNeverBlocks(t *testing.T) {
	// Worker not started: the queue fills up and further notifications
	// must be dropped, not block the request path. A hang here fails the
	// test via timeout.
	m := New("", 587, "", "")
	for i := 0; i < 200; i++ {
		m.NotifyPatientCreated("doc@clinic.test", "P001")
	}
}

func TestDisabledMailerDropsSilently(t *testing.T) {
	// No SMTP host configured: sends are skipped, nothing panics.
	m := New("", 587, "", "")
	m.Start()
	m.NotifyPatientCreated("doc@clinic.test", "P002")
}
