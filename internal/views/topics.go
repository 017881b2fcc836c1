// AngelaMos | 2026
// topics.go

package views

type Topic string

const (
	TopicTier         Topic = "tier"
	TopicSponsor      Topic = "sponsor"
	TopicEvent        Topic = "event"
	TopicEventSponsor Topic = "event_sponsor"
	TopicApproval     Topic = "approval"
	TopicRole         Topic = "role"
	TopicProfile      Topic = "profile"
)

const (
	RouteDashboard       = "/dashboard"
	RouteProfile         = "/profile"
	RouteSponsors        = "/sponsors"
	RouteSponsorsTiers   = "/sponsors-tiers"
	RouteSponsor         = "/sponsor"
	RouteEvents          = "/events"
	RouteEventsSponsors  = "/events-sponsors"
	RouteEvent           = "/event"
	RouteManageTiers     = "/manage/tiers"
	RouteManageLinks     = "/manage/event-sponsors"
	RouteManageApprovals = "/manage/user-approvals"
	RouteManageRoles     = "/manage/user-roles"
)

const (
	ParamID        = "id"
	ParamEventID   = "event_id"
	ParamSponsorID = "sponsor_id"
	ParamUserID    = "user_id"
)

// Dependent is one cached view affected by a topic. When Param is set and
// supplied, only that entry of the view is dropped; otherwise the whole
// view goes.
type Dependent struct {
	Route string
	Param string
}

type Params map[string]string

var dependents = map[Topic][]Dependent{
	TopicTier: {
		{Route: RouteManageTiers},
		{Route: RouteSponsors},
		{Route: RouteSponsorsTiers},
		{Route: RouteSponsor},
		{Route: RouteEvent},
		{Route: RouteEventsSponsors},
		{Route: RouteManageLinks},
	},
	TopicSponsor: {
		{Route: RouteSponsors},
		{Route: RouteSponsorsTiers},
		{Route: RouteSponsor, Param: ParamID},
		{Route: RouteManageTiers},
		{Route: RouteManageLinks},
		{Route: RouteEventsSponsors},
		{Route: RouteEvent},
		{Route: RouteDashboard},
	},
	TopicEvent: {
		{Route: RouteEvents},
		{Route: RouteEventsSponsors},
		{Route: RouteEvent, Param: ParamID},
		{Route: RouteManageLinks},
		{Route: RouteSponsor},
		{Route: RouteDashboard},
	},
	TopicEventSponsor: {
		{Route: RouteManageLinks},
		{Route: RouteEventsSponsors},
		{Route: RouteEvent, Param: ParamEventID},
		{Route: RouteSponsor, Param: ParamSponsorID},
	},
	TopicApproval: {
		{Route: RouteManageApprovals},
		{Route: RouteManageRoles},
		{Route: RouteProfile, Param: ParamUserID},
	},
	TopicRole: {
		{Route: RouteManageRoles},
		{Route: RouteProfile, Param: ParamUserID},
	},
	TopicProfile: {
		{Route: RouteProfile, Param: ParamUserID},
		{Route: RouteManageApprovals},
		{Route: RouteManageRoles},
	},
}

func Dependents(topic Topic) []Dependent {
	return dependents[topic]
}

func Topics() []Topic {
	return []Topic{
		TopicTier,
		TopicSponsor,
		TopicEvent,
		TopicEventSponsor,
		TopicApproval,
		TopicRole,
		TopicProfile,
	}
}
