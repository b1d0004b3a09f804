package ws

// ViewMessage is the envelope pushed to view subscribers whenever the
// synchronizer rebuilds a snapshot.
type ViewMessage struct {
	Type string      `json:"type"`
	View string      `json:"view"`
	Data interface{} `json:"data"`
}

// ViewHub streams view snapshots to subscribed clients so every open surface
// converges on the latest filtered subset without polling.
type ViewHub struct {
	*Hub
}

func NewViewHub() *ViewHub {
	return &ViewHub{Hub: NewHub()}
}

// BroadcastView satisfies the synchronizer's broadcaster interface.
func (h *ViewHub) BroadcastView(view string, snapshot interface{}) {
	h.BroadcastAll(ViewMessage{Type: "view", View: view, Data: snapshot})
}
