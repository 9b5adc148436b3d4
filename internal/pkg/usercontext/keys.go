package usercontext

// Session and Locals keys shared between the auth controllers and the
// middleware that hydrates the per-request user context. The string values
// are part of live sessions, so changing them logs everyone out.
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUsername      = "username"
	KeyIsAdmin       = "isAdmin"
	KeyFromProtected = "from_protected"
)
