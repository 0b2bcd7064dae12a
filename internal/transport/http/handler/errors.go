package handler

const (
	errInternalServer     = "Internal server error"
	errEmailTaken         = "Email is already registered"
	errInvalidCredentials = "Invalid email or password"
	errResetTokenInvalid  = "Invalid or expired reset token"
	errProjectNotFound    = "Project not found"
	errTaskNotFound       = "Task not found"
)
