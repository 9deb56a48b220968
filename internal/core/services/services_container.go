package services

import (
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo)
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.AssignmentRepo)
	container.Assignment = NewAssignmentService(repos.AssignmentRepo, repos.WorkplaceRepo)

	// The public board reads the active layout through the layout service so
	// both share the same default grid.
	container.DisplayLayout = NewDisplayLayoutService(
		repos.DisplayLayoutRepo,
		WithDefaultGrid(cfg.DisplayDefaultRows, cfg.DisplayDefaultCols),
	)
	container.Public = NewPublicService(
		repos.AssignmentRepo,
		repos.WorkplaceRepo,
		container.DisplayLayout,
		WithLocation(cfg.Timezone),
		WithDefaultMode(cfg.DisplayMode),
		WithFallbackGrid(cfg.DisplayDefaultRows, cfg.DisplayDefaultCols),
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade  = (*tokenService)(nil)
	_ portssvc.PublicSvcFacade = (*publicService)(nil)
)
