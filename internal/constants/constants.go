package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyCurrentUser = "current_user"
)

// Authentication constraints
const (
	MinLoginLength    = 3
	MinPasswordLength = 8
)

// Roles in canonical casing. Order matters: it is the order roles are
// enumerated in error messages and seeded into the database.
const (
	RoleOwner          = "Owner"
	RoleAdmin          = "Admin"
	RoleProjectManager = "Project Manager"
	RoleDeveloper      = "Developer"
)

// RoleNames lists every seeded role in canonical order.
var RoleNames = []string{RoleOwner, RoleAdmin, RoleProjectManager, RoleDeveloper}

// RoleDescriptions maps each role to its permission description.
var RoleDescriptions = map[string]string{
	RoleOwner: "Can create, read, modify, delete tasks, " +
		"reassign responsible person. Cannot change status of tasks. " +
		"Cannot be assigned responsibility for a task",
	RoleAdmin: "Can create, read, modify, delete tasks, " +
		"reassign responsible person, change status of tasks. " +
		"Cannot be assigned responsibility for a task",
	RoleProjectManager: "Can create, read, modify, delete tasks, " +
		"reassign responsible person, change status of tasks. " +
		"Can be assigned responsibility for a task",
	RoleDeveloper: "Can read tasks, change status of tasks. " +
		"Cannot reassign responsible person, " +
		"Can be assigned responsibility for a task",
}

// AssignableRoles are the only roles that may hold a task as
// responsible person or performer.
var AssignableRoles = []string{RoleProjectManager, RoleDeveloper}

// Task statuses in canonical casing. The first entry is the default for
// newly created tasks.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "In progress"
	TaskStatusDone       = "Done"
	TaskStatusBacklog    = "Backlog"
)

// TaskStatuses lists every seeded status in canonical order.
var TaskStatuses = []string{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusDone,
	TaskStatusBacklog,
}

// Priority importance levels. Level 1 is the highest urgency, level 5
// the lowest and the default for new tasks.
const (
	PriorityLevelHighest = 1
	PriorityLevelLowest  = 5
)

// TaskPriorityLabels maps each importance level to its display label.
var TaskPriorityLabels = map[int]string{
	1: "Highest",
	2: "Critical",
	3: "Alarming",
	4: "Act Soon",
	5: "Lowest",
}
