package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *controllers.DoctorController,
) {
	router.Get("/doctors", doctorController.ListDoctors)
	router.Get("/booked-slots/{doctorId}", doctorController.GetBookedSlots)
	router.Get("/slots/{doctorId}", doctorController.GetOpenSlots)

	// The availability change also lives under /admin; the original
	// console calls both paths.
	router.With(middlewares.AuthenticateAdmin).Put("/change-availability", doctorController.ChangeAvailability)
	router.With(middlewares.AuthenticateAdmin).Get("/availability/{doctorId}", doctorController.GetAvailability)
}
