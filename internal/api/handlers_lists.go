package api

import (
	"encoding/json"
	"net/http"

	"github.com/hmizuno/taskdeck/internal/usecase"
)

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var in createListIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeInvalid(w, "invalid json body")
		return
	}

	out, err := s.container.CreateListUseCase().Execute(r.Context(), usecase.CreateListInput{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, out.List)
}

func (s *Server) handleListLists(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.ListListsUseCase().Execute(r.Context())
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeCollection(w, out.Lists, Meta{Total: len(out.Lists)})
}

func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	list, err := s.container.GetListUseCase().Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if list == nil {
		s.writeNotFound(w, "list not found")
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handlePatchList(w http.ResponseWriter, r *http.Request) {
	var in patchListIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeInvalid(w, "invalid json body")
		return
	}

	out, err := s.container.UpdateListUseCase().Execute(r.Context(), usecase.UpdateListInput{
		ID:          r.PathValue("id"),
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if out.List == nil {
		s.writeNotFound(w, "list not found")
		return
	}
	writeData(w, http.StatusOK, out.List)
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.DeleteListUseCase().Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if !out.Deleted {
		s.writeNotFound(w, "list not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
