package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/storage"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// patientAPI wires the patient routes exactly as the real router does,
// backed by the flat-file store and a mock doctor store.
func patientAPI(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	doctors := newMockDoctorStore()
	doctor := &models.Doctor{Name: "Dr Strange", Email: "strange@clinic.test", PasswordHash: "x"}
	if err := doctors.CreateDoctor(doctor); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	patients := storage.NewJSONStore(filepath.Join(t.TempDir(), "patients.json"))
	h := NewPatientHandler(patients, doctors, nil)

	r := gin.New()
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(testSecret))
	{
		protected.GET("/view", h.View)
		protected.GET("/patient/:id", h.Get)
		protected.GET("/sort", h.Sort)
		protected.POST("/create", h.Create)
		protected.PUT("/edit/:id", h.Edit)
		protected.DELETE("/delete/:id", h.Delete)
	}

	token, err := utils.GenerateToken(testSecret, doctor.ID, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return r, token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodePatient(t *testing.T, w *httptest.ResponseRecorder) models.Patient {
	t.Helper()
	var resp struct {
		Data models.Patient `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v, body: %s", err, w.Body.String())
	}
	return resp.Data
}

var samplePatient = gin.H{
	"id": "P001", "name": "Asha", "city": "Pune", "age": 30,
	"gender": "female", "height": 1.7, "weight": 70,
}

func TestCreatePatient(t *testing.T) {
	r, token := patientAPI(t)

	w := doJSON(t, r, http.MethodPost, "/create", token, samplePatient)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	p := decodePatient(t, w)
	if p.BMI != 24.22 || p.Verdict != models.VerdictNormal {
		t.Errorf("got bmi=%v verdict=%q, want 24.22 Normal", p.BMI, p.Verdict)
	}
	if p.DoctorID != 1 {
		t.Errorf("DoctorID = %d, want the authenticated doctor (1)", p.DoctorID)
	}
}

func TestCreatePatient_Duplicate(t *testing.T) {
	r, token := patientAPI(t)

	doJSON(t, r, http.MethodPost, "/create", token, samplePatient)
	w := doJSON(t, r, http.MethodPost, "/create", token, samplePatient)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreatePatient_ValidationFailures(t *testing.T) {
	r, token := patientAPI(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"age out of range", gin.H{"id": "P010", "name": "A", "city": "C", "age": 130, "gender": "male", "height": 1.7, "weight": 70}},
		{"age zero", gin.H{"id": "P011", "name": "A", "city": "C", "age": 0, "gender": "male", "height": 1.7, "weight": 70}},
		{"gender outside enum", gin.H{"id": "P012", "name": "A", "city": "C", "age": 30, "gender": "unknown", "height": 1.7, "weight": 70}},
		{"negative height", gin.H{"id": "P013", "name": "A", "city": "C", "age": 30, "gender": "male", "height": -1.7, "weight": 70}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/create", token, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	r, token := patientAPI(t)

	w := doJSON(t, r, http.MethodGet, "/patient/P404", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestEditPatient_WeightOnlyRederives(t *testing.T) {
	r, token := patientAPI(t)

	doJSON(t, r, http.MethodPost, "/create", token, samplePatient)
	w := doJSON(t, r, http.MethodPut, "/edit/P001", token, gin.H{"weight": 90})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	p := decodePatient(t, w)
	if p.BMI != 31.14 || p.Verdict != models.VerdictObese {
		t.Errorf("got bmi=%v verdict=%q, want 31.14 Obese", p.BMI, p.Verdict)
	}
	if p.Height != 1.7 || p.Name != "Asha" {
		t.Error("fields absent from the patch were modified")
	}
}

func TestEditPatient_NotFound(t *testing.T) {
	r, token := patientAPI(t)

	w := doJSON(t, r, http.MethodPut, "/edit/P404", token, gin.H{"weight": 90})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSortPatients(t *testing.T) {
	r, token := patientAPI(t)

	doJSON(t, r, http.MethodPost, "/create", token, samplePatient)
	doJSON(t, r, http.MethodPost, "/create", token, gin.H{
		"id": "P002", "name": "Ravi", "city": "Delhi", "age": 45,
		"gender": "male", "height": 1.6, "weight": 90,
	})

	w := doJSON(t, r, http.MethodGet, "/sort?sort_by=bmi&order=desc", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []models.Patient `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].ID != "P002" {
		t.Errorf("desc bmi order wrong: %+v", resp.Data)
	}
}

func TestSortPatients_InvalidField(t *testing.T) {
	r, token := patientAPI(t)

	w := doJSON(t, r, http.MethodGet, "/sort?sort_by=name&order=asc", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeletePatient(t *testing.T) {
	r, token := patientAPI(t)

	doJSON(t, r, http.MethodPost, "/create", token, samplePatient)
	w := doJSON(t, r, http.MethodDelete, "/delete/P001", token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/delete/P001", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	r, _ := patientAPI(t)

	// No token at all
	w := doJSON(t, r, http.MethodGet, "/view", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want 401", w.Code)
	}

	// Expired token
	expired, err := utils.GenerateToken(testSecret, 1, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w = doJSON(t, r, http.MethodGet, "/view", expired, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}

	// Token signed with a different secret
	forged, err := utils.GenerateToken("someone-elses-secret", 1, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w = doJSON(t, r, http.MethodGet, "/view", forged, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("forged token: status = %d, want 401", w.Code)
	}
}
