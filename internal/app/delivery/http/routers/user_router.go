package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
) {
	router.Post("/register", authController.RegisterPatient)
	router.Post("/login", authController.LoginPatient)
	router.Get("/check-exists", patientController.CheckExists)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AuthenticatePatient)
		r.Get("/get-profile", patientController.GetProfile)
		r.Post("/update-profile", patientController.UpdateProfile)
		r.Post("/book-appointment", appointmentController.BookAppointment)
		r.Post("/cancel-appointment", appointmentController.CancelAppointment)
		r.Post("/delete-appointment", appointmentController.DeleteAppointment)
		r.Post("/pay-appointment", appointmentController.PayAppointment)
		r.Get("/appointments", appointmentController.ListAppointments)
	})
}
