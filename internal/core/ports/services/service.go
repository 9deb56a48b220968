package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Employee      EmployeeSvcFacade
	Workplace     WorkplaceSvcFacade
	Attendance    AttendanceSvcFacade
	Assignment    AssignmentSvcFacade
	DisplayLayout DisplayLayoutSvcFacade
	Public        PublicSvcFacade
	User          UserSvcFacade
	Token         TokenSvcFacade
}
