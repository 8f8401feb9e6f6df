package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixExport is the suffix for export routes.
	RouteSuffixExport = "/export"
	// RouteSuffixUpload is the suffix for upload routes.
	RouteSuffixUpload = "/upload"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSection is the section parameter pattern.
	RouteParamSection = "/{section}"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteSubscribe is the public newsletter signup route.
	RouteSubscribe = "/subscribe"

	// RouteContent is the content sections admin route.
	RouteContent = "/content"
	// RouteLayouts is the layout settings admin route.
	RouteLayouts = "/layouts"
	// RouteHero is the hero content admin route.
	RouteHero = "/hero"
	// RouteAbout is the about content admin route.
	RouteAbout = "/about"
	// RouteCommunity is the community content admin route.
	RouteCommunity = "/community"
	// RouteFooter is the footer content admin route.
	RouteFooter = "/footer"
	// RouteSubscribers is the subscribers admin route.
	RouteSubscribers = "/subscribers"
	// RouteMedia is the media admin route.
	RouteMedia = "/media"
	// RouteEvents is the event log admin route.
	RouteEvents = "/events"

	// RouteContentSection is the per-section content editor route pattern.
	RouteContentSection = RouteContent + RouteParamSection
	// RouteLayoutsSection is the per-section layout settings route pattern.
	RouteLayoutsSection = RouteLayouts + RouteParamSection
	// RouteSubscribersID is the subscribers ID route pattern.
	RouteSubscribersID = RouteSubscribers + RouteParamID
	// RouteMediaID is the media ID route pattern.
	RouteMediaID = RouteMedia + RouteParamID
)

const (
	redirectAdmin            = "/admin"
	redirectLogin            = redirectAdmin + RouteLogin
	redirectAdminContent     = redirectAdmin + RouteContent
	redirectAdminLayouts     = redirectAdmin + RouteLayouts
	redirectAdminHero        = redirectAdmin + RouteHero
	redirectAdminAbout       = redirectAdmin + RouteAbout
	redirectAdminCommunity   = redirectAdmin + RouteCommunity
	redirectAdminFooter      = redirectAdmin + RouteFooter
	redirectAdminSubscribers = redirectAdmin + RouteSubscribers
	redirectAdminMedia       = redirectAdmin + RouteMedia
	redirectAdminEvents      = redirectAdmin + RouteEvents
)
