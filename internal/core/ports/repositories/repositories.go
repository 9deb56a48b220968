package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	EmployeeRepo      EmployeeRepositoryFacade
	WorkplaceRepo     WorkplaceRepositoryFacade
	AttendanceRepo    AttendanceRepository
	AssignmentRepo    AssignmentRepositoryFacade
	DisplayLayoutRepo DisplayLayoutRepositoryFacade
	UserRepo          UserRepositoryFacade
}
