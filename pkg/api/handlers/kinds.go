package handlers

import (
	"net/http"

	"github.com/marmos91/opendis/pkg/dis/pdu"
)

// KindInfo describes one registered PDU kind.
type KindInfo struct {
	Name       string `json:"name"`
	Type       uint8  `json:"type"`
	Family     uint8  `json:"family"`
	TypeName   string `json:"type_name"`
	FamilyName string `json:"family_name"`
}

// KindsHandler lists the PDU kinds the server decodes.
type KindsHandler struct {
	registry *pdu.Registry
}

// NewKindsHandler returns a KindsHandler; nil selects pdu.DefaultRegistry.
func NewKindsHandler(r *pdu.Registry) *KindsHandler {
	if r == nil {
		r = pdu.DefaultRegistry
	}
	return &KindsHandler{registry: r}
}

// List handles GET /pdus.
func (h *KindsHandler) List(w http.ResponseWriter, r *http.Request) {
	kinds := h.registry.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindInfo{
			Name:       h.registry.Name(k),
			Type:       uint8(k.Type),
			Family:     uint8(k.Family),
			TypeName:   k.Type.String(),
			FamilyName: k.Family.String(),
		})
	}
	WriteJSONOK(w, out)
}
