package user

type Permission string

const (
	// Companies & transfers
	PermissionCompanyView     Permission = "companies.view"
	PermissionCompanyManage   Permission = "companies.manage"
	PermissionTransferView    Permission = "transfers.view"
	PermissionTransferManage  Permission = "transfers.manage"
	PermissionTransferApprove Permission = "transfers.approve"

	// Expenses, external funds, members
	PermissionExpenseView   Permission = "expenses.view"
	PermissionExpenseManage Permission = "expenses.manage"

	// Trucking
	PermissionTruckView   Permission = "trucks.view"
	PermissionTruckManage Permission = "trucks.manage"

	// Projects
	PermissionProjectView   Permission = "projects.view"
	PermissionProjectManage Permission = "projects.manage"

	// External debts
	PermissionDebtView   Permission = "debts.view"
	PermissionDebtManage Permission = "debts.manage"

	// Factory, workshop, stock
	PermissionFactoryView   Permission = "factory.view"
	PermissionFactoryManage Permission = "factory.manage"

	// Workers & attendance
	PermissionWorkerView       Permission = "workers.view"
	PermissionWorkerManage     Permission = "workers.manage"
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Payroll statements
	PermissionPayrollView Permission = "payroll.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionCompanyView,
		PermissionCompanyManage,
		PermissionTransferView,
		PermissionTransferManage,
		PermissionTransferApprove,
		PermissionExpenseView,
		PermissionExpenseManage,
		PermissionTruckView,
		PermissionTruckManage,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionDebtView,
		PermissionDebtManage,
		PermissionFactoryView,
		PermissionFactoryManage,
		PermissionWorkerView,
		PermissionWorkerManage,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionPayrollView,
	},
	RoleManager: {
		PermissionCompanyView,
		PermissionTransferView,
		PermissionTransferManage,
		PermissionExpenseView,
		PermissionExpenseManage,
		PermissionTruckView,
		PermissionTruckManage,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionDebtView,
		PermissionDebtManage,
		PermissionFactoryView,
		PermissionFactoryManage,
		PermissionWorkerView,
		PermissionWorkerManage,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionPayrollView,
	},
	RoleStaff: {
		PermissionCompanyView,
		PermissionTransferView,
		PermissionExpenseView,
		PermissionTruckView,
		PermissionProjectView,
		PermissionDebtView,
		PermissionFactoryView,
		PermissionWorkerView,
		PermissionAttendanceView,
		PermissionAttendanceManage,
	},
}

func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
