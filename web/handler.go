// Package web serves the todo lists over HTTP with one list store per
// browser session.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	internalstrings "github.com/amonks/lists/internal/strings"
	"github.com/amonks/lists/list"
	"github.com/amonks/lists/session"
	"go.uber.org/zap"
)

// DefaultCookieName is used when Options.CookieName is empty.
const DefaultCookieName = "lists_session"

// Flash messages shown after successful operations.
const (
	msgListCreated   = "The list has been created."
	msgListUpdated   = "The list has been updated."
	msgListDeleted   = "The list has been deleted."
	msgTodoAdded     = "The todo was added."
	msgTodoUpdated   = "The todo has been updated."
	msgTodoDeleted   = "The todo has been deleted."
	msgTodosComplete = "All todos have been completed."
)

// Options configures the web handler.
type Options struct {
	// Sessions holds the per-session stores. Required.
	Sessions *session.Manager

	// CookieName names the session cookie.
	CookieName string

	// Secret authenticates session cookies. A random key is used when empty.
	Secret []byte

	// IdleTimeout is the cookie lifetime. Every request renews the cookie,
	// so only idle clients lose it. Zero disables the check.
	IdleTimeout time.Duration

	// SecureCookie marks the session cookie Secure.
	SecureCookie bool

	Logger *zap.Logger
}

// Handler serves the todo list pages.
type Handler struct {
	sessions     *session.Manager
	cookieName   string
	secureCookie bool
	cookies      cookieCodec
	idleTimeout  time.Duration
	logger       *zap.Logger
	mux          *http.ServeMux
	templates    *templateWrapper
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.NewManager(session.Options{})
	}

	handler := &Handler{
		sessions:     sessions,
		cookieName:   cookieName,
		secureCookie: opts.SecureCookie,
		cookies:      newCookieCodec(cookieName, opts.Secret, opts.IdleTimeout),
		idleTimeout:  opts.IdleTimeout,
		logger:       logger,
		templates:    newTemplateWrapper(logger),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.handleRoot)
	mux.HandleFunc("GET /lists", handler.handleLists)
	mux.HandleFunc("GET /lists/new", handler.handleNewList)
	mux.HandleFunc("POST /lists", handler.handleCreateList)
	mux.HandleFunc("GET /lists/{id}", handler.handleList)
	mux.HandleFunc("GET /lists/{id}/edit", handler.handleEditList)
	mux.HandleFunc("POST /lists/{id}", handler.handleRenameList)
	mux.HandleFunc("POST /lists/{id}/destroy", handler.handleDeleteList)
	mux.HandleFunc("POST /lists/{id}/complete_all", handler.handleCompleteAll)
	mux.HandleFunc("POST /lists/{id}/todos", handler.handleCreateTodo)
	mux.HandleFunc("POST /lists/{id}/todos/{todo_id}", handler.handleUpdateTodo)
	mux.HandleFunc("POST /lists/{id}/todos/{todo_id}/destroy", handler.handleDeleteTodo)
	mux.HandleFunc("POST /session/destroy", handler.handleDestroySession)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type templateWrapper struct {
	tmpl   *template.Template
	logger *zap.Logger
}

func newTemplateWrapper(logger *zap.Logger) *templateWrapper {
	return &templateWrapper{tmpl: newTemplates(), logger: logger}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tw.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		tw.logger.Error("render page", zap.String("view", data.View), zap.Error(err))
	}
}

type pageData struct {
	View  string
	Title string
	Flash session.Flash
	Error string
	Lists []listView
	List  *listView
	Form  formValues
}

type listView struct {
	ID       int
	Name     string
	Complete bool
	Progress string
	Todos    []todoView
}

type todoView struct {
	ID        int
	Name      string
	Completed bool
}

type formValues struct {
	ListName string
	TodoName string
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/lists", http.StatusFound)
}

func (h *Handler) handleLists(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	lists := list.SortedLists(sess.Store.Lists())
	views := make([]listView, 0, len(lists))
	for _, entry := range lists {
		views = append(views, newListSummary(entry.Item))
	}
	h.templates.Render(w, http.StatusOK, pageData{
		View:  "lists",
		Title: "Lists",
		Flash: sess.TakeFlash(),
		Lists: views,
	})
}

func (h *Handler) handleNewList(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	h.templates.Render(w, http.StatusOK, pageData{
		View:  "new_list",
		Title: "New List",
		Flash: sess.TakeFlash(),
	})
}

func (h *Handler) handleCreateList(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	name := trimmedFormValue(r, "list_name")
	id, err := sess.Store.CreateList(name)
	if err != nil {
		h.templates.Render(w, http.StatusUnprocessableEntity, pageData{
			View:  "new_list",
			Title: "New List",
			Error: err.Error(),
			Form:  formValues{ListName: name},
		})
		return
	}
	h.logger.Debug("list created", zap.String("session", sess.ID), zap.Int("list_id", id))
	sess.SetFlash(session.Flash{Success: msgListCreated})
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	l, err := h.loadList(sess, r)
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	view := newListDetail(l)
	h.templates.Render(w, http.StatusOK, pageData{
		View:  "list",
		Title: l.Name,
		Flash: sess.TakeFlash(),
		List:  &view,
	})
}

func (h *Handler) handleEditList(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	l, err := h.loadList(sess, r)
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	view := newListSummary(l)
	h.templates.Render(w, http.StatusOK, pageData{
		View:  "edit_list",
		Title: "Edit " + l.Name,
		Flash: sess.TakeFlash(),
		List:  &view,
		Form:  formValues{ListName: l.Name},
	})
}

func (h *Handler) handleRenameList(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	listID, err := pathID(r, "id", list.MsgListNotFound)
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	name := trimmedFormValue(r, "list_name")
	err = sess.Store.RenameList(listID, name)
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	if err != nil {
		l, loadErr := sess.Store.Load(listID)
		if h.redirectNotFound(w, r, sess, loadErr) {
			return
		}
		view := newListSummary(l)
		h.templates.Render(w, http.StatusUnprocessableEntity, pageData{
			View:  "edit_list",
			Title: "Edit " + l.Name,
			Error: err.Error(),
			List:  &view,
			Form:  formValues{ListName: name},
		})
		return
	}
	sess.SetFlash(session.Flash{Success: msgListUpdated})
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

func (h *Handler) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	listID, err := pathID(r, "id", list.MsgListNotFound)
	if err == nil {
		err = sess.Store.DeleteList(listID)
	}
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	h.logger.Debug("list deleted", zap.String("session", sess.ID), zap.Int("list_id", listID))
	sess.SetFlash(session.Flash{Success: msgListDeleted})
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

func (h *Handler) handleCompleteAll(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	listID, err := pathID(r, "id", list.MsgListNotFound)
	if err == nil {
		err = sess.Store.CompleteAll(listID)
	}
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	sess.SetFlash(session.Flash{Success: msgTodosComplete})
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

func (h *Handler) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	listID, err := pathID(r, "id", list.MsgListNotFound)
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	name := trimmedFormValue(r, "todo")
	todoID, err := sess.Store.CreateTodo(listID, name)
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	if err != nil {
		l, loadErr := sess.Store.Load(listID)
		if h.redirectNotFound(w, r, sess, loadErr) {
			return
		}
		view := newListDetail(l)
		h.templates.Render(w, http.StatusUnprocessableEntity, pageData{
			View:  "list",
			Title: l.Name,
			Error: err.Error(),
			List:  &view,
			Form:  formValues{TodoName: name},
		})
		return
	}
	h.logger.Debug("todo created",
		zap.String("session", sess.ID),
		zap.Int("list_id", listID),
		zap.Int("todo_id", todoID),
	)
	sess.SetFlash(session.Flash{Success: msgTodoAdded})
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

func (h *Handler) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	completed := trimmedFormValue(r, "completed") == "true"
	listID, todo, err := h.loadTodo(sess, r)
	if err == nil {
		err = sess.Store.SetTodoCompletion(listID, todo.ID, completed)
	}
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	h.logger.Debug("todo updated",
		zap.String("session", sess.ID),
		zap.Int("list_id", listID),
		zap.Int("todo_id", todo.ID),
		zap.String("todo", todo.Name),
		zap.Bool("completed", completed),
	)
	sess.SetFlash(session.Flash{Success: msgTodoUpdated})
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	listID, todo, err := h.loadTodo(sess, r)
	if err == nil {
		err = sess.Store.DeleteTodo(listID, todo.ID)
	}
	if h.redirectNotFound(w, r, sess, err) {
		return
	}
	h.logger.Debug("todo deleted",
		zap.String("session", sess.ID),
		zap.Int("list_id", listID),
		zap.Int("todo_id", todo.ID),
		zap.String("todo", todo.Name),
	)
	sess.SetFlash(session.Flash{Success: msgTodoDeleted})
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

func (h *Handler) handleDestroySession(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.sessionID(r); ok {
		if err := h.sessions.Destroy(id); err == nil {
			h.logger.Debug("session destroyed", zap.String("session", id))
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

// session returns the caller's session, starting a new one when the cookie is
// missing, tampered with, too old, or names an expired session. The cookie is
// reissued on every call so its age tracks the session's idle time.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	if id, ok := h.sessionID(r); ok {
		sess, err := h.sessions.Get(id)
		if err == nil {
			h.setSessionCookie(w, sess.ID)
			return sess
		}
		if !errors.Is(err, session.ErrSessionNotFound) {
			h.logger.Warn("load session", zap.Error(err))
		}
	}
	sess := h.sessions.Create()
	h.logger.Debug("session started", zap.String("session", sess.ID))
	h.setSessionCookie(w, sess.ID)
	return sess
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, id string) {
	value, err := h.cookies.encode(id)
	if err != nil {
		h.logger.Error("encode session cookie", zap.Error(err))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.idleTimeout / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) sessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return "", false
	}
	return h.cookies.decode(cookie.Value)
}

func (h *Handler) loadList(sess *session.Session, r *http.Request) (list.List, error) {
	listID, err := pathID(r, "id", list.MsgListNotFound)
	if err != nil {
		return list.List{}, err
	}
	return sess.Store.Load(listID)
}

// loadTodo resolves the list and todo named by the path.
func (h *Handler) loadTodo(sess *session.Session, r *http.Request) (int, list.Todo, error) {
	listID, todoID, err := pathTodoIDs(r)
	if err != nil {
		return 0, list.Todo{}, err
	}
	todo, err := sess.Store.LoadTodo(listID, todoID)
	if err != nil {
		return 0, list.Todo{}, err
	}
	return listID, todo, nil
}

// redirectNotFound sends the caller back to the list index with the error as
// a flash when err is a not-found error. It reports whether it responded.
func (h *Handler) redirectNotFound(w http.ResponseWriter, r *http.Request, sess *session.Session, err error) bool {
	var notFound *list.NotFoundError
	if !errors.As(err, &notFound) {
		return false
	}
	sess.SetFlash(session.Flash{Error: notFound.Message})
	status := http.StatusSeeOther
	if r.Method == http.MethodGet {
		status = http.StatusFound
	}
	http.Redirect(w, r, "/lists", status)
	return true
}

func newListSummary(l list.List) listView {
	return listView{
		ID:       l.ID,
		Name:     l.Name,
		Complete: list.IsComplete(l),
		Progress: list.Progress(l),
	}
}

func newListDetail(l list.List) listView {
	view := newListSummary(l)
	sorted := list.SortedTodos(l.Todos)
	view.Todos = make([]todoView, 0, len(sorted))
	for _, entry := range sorted {
		view.Todos = append(view.Todos, todoView{
			ID:        entry.Item.ID,
			Name:      entry.Item.Name,
			Completed: entry.Item.Completed,
		})
	}
	return view
}

// pathID parses an integer path value. Unparseable ids cannot name an existing
// record, so they are reported as not found.
func pathID(r *http.Request, key, notFoundMessage string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(key))
	if err != nil {
		return 0, &list.NotFoundError{Message: notFoundMessage}
	}
	return id, nil
}

func pathTodoIDs(r *http.Request) (int, int, error) {
	listID, err := pathID(r, "id", list.MsgListNotFound)
	if err != nil {
		return 0, 0, err
	}
	todoID, err := pathID(r, "todo_id", list.MsgTodoNotFound)
	if err != nil {
		return 0, 0, err
	}
	return listID, todoID, nil
}

func trimmedFormValue(r *http.Request, key string) string {
	return internalstrings.TrimSpace(r.FormValue(key))
}

func listPath(listID int) string {
	return "/lists/" + strconv.Itoa(listID)
}
