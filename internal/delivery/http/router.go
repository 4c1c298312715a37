package http

import (
	"net/http"

	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	authHandler             *handler.AuthHandler
	appointmentHandler      *handler.AppointmentHandler
	reviewHandler           *handler.ReviewHandler
	prescriptionHandler     *handler.PrescriptionHandler
	diagnosisHandler        *handler.DiagnosisHandler
	consultationNoteHandler *handler.ConsultationNoteHandler
	timeSlotHandler         *handler.TimeSlotHandler
	notificationHandler     *handler.NotificationHandler
	doctorHandler           *handler.DoctorHandler
	patientHandler          *handler.PatientHandler
	auditLogHandler         *handler.AuditLogHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	reviewHandler *handler.ReviewHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	consultationNoteHandler *handler.ConsultationNoteHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	notificationHandler *handler.NotificationHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		authHandler:             authHandler,
		appointmentHandler:      appointmentHandler,
		reviewHandler:           reviewHandler,
		prescriptionHandler:     prescriptionHandler,
		diagnosisHandler:        diagnosisHandler,
		consultationNoteHandler: consultationNoteHandler,
		timeSlotHandler:         timeSlotHandler,
		notificationHandler:     notificationHandler,
		doctorHandler:           doctorHandler,
		patientHandler:          patientHandler,
		auditLogHandler:         auditLogHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Doctor directory (any authenticated role)
	directory := api.NewRoute().Subrouter()
	directory.Use(r.authMiddleware.Authenticate)
	directory.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	directory.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	directory.HandleFunc("/doctors/{id}/reviews", r.reviewHandler.ListByDoctor).Methods(http.MethodGet)
	directory.HandleFunc("/doctors/{id}/time-slots", r.timeSlotHandler.ListByDoctor).Methods(http.MethodGet)

	// Appointments (any authenticated role; scoping happens in the usecase)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/prescriptions", r.prescriptionHandler.ListByAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/diagnoses", r.diagnosisHandler.ListByAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/consultation-notes", r.consultationNoteHandler.ListByAppointment).Methods(http.MethodGet)

	// Appointment booking and reviews (patient only)
	patientOnly := api.NewRoute().Subrouter()
	patientOnly.Use(r.authMiddleware.Authenticate)
	patientOnly.Use(middleware.RequirePatient)
	patientOnly.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	patientOnly.HandleFunc("/reviews", r.reviewHandler.Upsert).Methods(http.MethodPost)
	patientOnly.HandleFunc("/reviews/{id}", r.reviewHandler.Delete).Methods(http.MethodDelete)
	patientOnly.HandleFunc("/patients/me", r.patientHandler.GetOwnProfile).Methods(http.MethodGet)
	patientOnly.HandleFunc("/patients/me", r.patientHandler.UpdateOwnProfile).Methods(http.MethodPatch)

	// Clinical records and availability (doctor only)
	doctorOnly := api.NewRoute().Subrouter()
	doctorOnly.Use(r.authMiddleware.Authenticate)
	doctorOnly.Use(middleware.RequireDoctor)
	doctorOnly.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	doctorOnly.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPatch)
	doctorOnly.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)
	doctorOnly.HandleFunc("/diagnoses", r.diagnosisHandler.Create).Methods(http.MethodPost)
	doctorOnly.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.Update).Methods(http.MethodPatch)
	doctorOnly.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.Delete).Methods(http.MethodDelete)
	doctorOnly.HandleFunc("/consultation-notes", r.consultationNoteHandler.Create).Methods(http.MethodPost)
	doctorOnly.HandleFunc("/consultation-notes/{id}", r.consultationNoteHandler.Update).Methods(http.MethodPatch)
	doctorOnly.HandleFunc("/consultation-notes/{id}", r.consultationNoteHandler.Delete).Methods(http.MethodDelete)
	doctorOnly.HandleFunc("/time-slots", r.timeSlotHandler.Upsert).Methods(http.MethodPut)
	doctorOnly.HandleFunc("/time-slots", r.timeSlotHandler.ListOwn).Methods(http.MethodGet)
	doctorOnly.HandleFunc("/time-slots/{id}", r.timeSlotHandler.Delete).Methods(http.MethodDelete)
	doctorOnly.HandleFunc("/doctors/me/profile", r.doctorHandler.GetOwnProfile).Methods(http.MethodGet)
	doctorOnly.HandleFunc("/doctors/me/profile", r.doctorHandler.UpdateOwnProfile).Methods(http.MethodPatch)

	// Clinical record listing (any authenticated role; scoping in the usecase)
	records := api.NewRoute().Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.HandleFunc("/prescriptions", r.prescriptionHandler.List).Methods(http.MethodGet)
	records.HandleFunc("/diagnoses", r.diagnosisHandler.List).Methods(http.MethodGet)
	records.HandleFunc("/consultation-notes", r.consultationNoteHandler.List).Methods(http.MethodGet)

	// Notifications (authenticated, always scoped to the caller)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.List).Methods(http.MethodGet)
	notifications.HandleFunc("/unread-count", r.notificationHandler.UnreadCount).Methods(http.MethodGet)
	notifications.HandleFunc("/read-all", r.notificationHandler.MarkAllRead).Methods(http.MethodPost)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPost)
	notifications.HandleFunc("/{id}", r.notificationHandler.Delete).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
