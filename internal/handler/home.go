package handler

import "net/http"

// GetHome handles GET /home.
// It always answers 200: upstream failures are already folded into the view
// model as default copy or empty sections.
func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	vm := s.home.Home(r.Context())
	if vm.Locale != "" {
		w.Header().Set("Content-Language", vm.Locale)
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, vm)
}
