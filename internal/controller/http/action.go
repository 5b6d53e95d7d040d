package http

// adminAction enumerates every page and mutation reachable through the
// admin panel's single /admin URL.
type adminAction int

const (
	actionDashboard adminAction = iota
	actionAddPost
	actionEditPost
	actionManagePosts
	actionManageComments
	actionDeletePost
	actionDeleteComment
	actionLogout
	actionUnknown
)

func parseAdminAction(raw string) adminAction {
	switch raw {
	case "", "dashboard":
		return actionDashboard
	case "add_post":
		return actionAddPost
	case "edit_post":
		return actionEditPost
	case "manage_posts":
		return actionManagePosts
	case "manage_comments":
		return actionManageComments
	case "delete_post":
		return actionDeletePost
	case "delete_comment":
		return actionDeleteComment
	case "logout":
		return actionLogout
	default:
		return actionUnknown
	}
}
