package domain

const (
	PrivacyPublic  = "public"
	PrivacyFriends = "friends"
	PrivacyPrivate = "private"
)

// Only PrivacyPublic has user-visible meaning today; the other values are
// accepted and stored for later use.

const (
	SenderMe     = "me"
	SenderFriend = "friend"
)

// View names used for snapshot routing and metrics labels.
const (
	ViewMap      = "map"
	ViewCalendar = "calendar"
	ViewList     = "list"
	ViewProfile  = "profile"
)
