package preferences

// Preferences bundles the three persisted values of one device.
type Preferences struct {
	DarkMode *Pref[bool]
	Liked    *LikedSet
	Session  *Session
}

func New(store Store) *Preferences {
	return &Preferences{
		DarkMode: NewPref(store, KeyDarkMode, false),
		Liked:    NewLikedSet(store),
		Session:  NewSession(store),
	}
}
