package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	appointmentController *controllers.AppointmentController,
) {
	router.Post("/login", authController.LoginAdmin)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AuthenticateAdmin)
		r.Post("/add-doctor", doctorController.AddDoctor)
		r.Get("/doctors", doctorController.ListDoctors)
		r.Delete("/doctors/{id}", doctorController.DeleteDoctor)
		r.Post("/doctors/change-availability", doctorController.ChangeAvailability)
		r.Get("/appointments", appointmentController.ListAllAppointments)
	})
}
