package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mk-watch-mods/models"
	"mk-watch-mods/repository"
	"mk-watch-mods/service"
)

// SessionCookieName is the cookie carrying the visitor's session id
const SessionCookieName = "MKWM_SESSION"

// validationMessages maps validation reasons to the text shown next to the form
var validationMessages = map[string]string{
	service.ReasonMissingName:    "Please enter your name.",
	service.ReasonMissingContact: "Please enter an email address or phone number.",
	service.ReasonInvalidContact: "Please enter a valid email address or phone number.",
}

// Reserver submits reservation requests
type Reserver interface {
	Submit(ctx context.Context, name, contact string, product models.Product, collection string) (*models.ReservationResult, error)
}

// StorefrontController handles the storefront screens and actions
type StorefrontController struct {
	catalog      repository.CatalogRepositoryInterface
	sessions     *service.SessionStore
	renderer     *service.Renderer
	reservations Reserver
	images       *service.ImageService
	tmpl         *template.Template
	logoPath     string
	secureCookie bool
	log          *zap.SugaredLogger
}

// StorefrontOptions holds the collaborators of a StorefrontController
type StorefrontOptions struct {
	Catalog      repository.CatalogRepositoryInterface
	Sessions     *service.SessionStore
	Renderer     *service.Renderer
	Reservations Reserver
	Images       *service.ImageService
	Template     *template.Template
	LogoPath     string
	SecureCookie bool
	Logger       *zap.SugaredLogger
}

// NewStorefrontController creates a new StorefrontController
func NewStorefrontController(opts StorefrontOptions) *StorefrontController {
	return &StorefrontController{
		catalog:      opts.Catalog,
		sessions:     opts.Sessions,
		renderer:     opts.Renderer,
		reservations: opts.Reservations,
		images:       opts.Images,
		tmpl:         opts.Template,
		logoPath:     opts.LogoPath,
		secureCookie: opts.SecureCookie,
		log:          opts.Logger,
	}
}

// session loads the visitor's session, issuing a cookie for new visitors
func (c *StorefrontController) session(w http.ResponseWriter, r *http.Request) *models.Session {
	id := ""
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		id = cookie.Value
	}
	sess, created := c.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   c.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Home handles GET /
func (c *StorefrontController) Home(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	sess.Lock()
	if service.Reconcile(&sess.Nav, c.catalog) {
		c.log.Infof("🔁 Home: Selected product no longer in %q, back to grid", sess.Nav.Collection)
	}
	view := c.renderer.Render(sess)
	view.Flash = sess.TakeFlash()
	sess.Unlock()

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, view); err != nil {
		c.log.Errorf("❌ Home: Error rendering screen: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		c.log.Errorf("❌ Home: Error writing response: %v", err)
	}
}

// SwitchCollection handles POST /collection
func (c *StorefrontController) SwitchCollection(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	name := strings.TrimSpace(r.PostFormValue("name"))

	sess.Lock()
	if err := service.SwitchCollection(&sess.Nav, c.catalog, name); err != nil {
		c.log.Warnf("⚠️  SwitchCollection: %v", err)
	} else {
		sess.Form = models.ReservationForm{}
	}
	sess.Unlock()

	redirectHome(w, r)
}

// Select handles POST /select
func (c *StorefrontController) Select(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	id := strings.TrimSpace(r.PostFormValue("id"))

	sess.Lock()
	previous := sess.Nav.SelectedID
	if err := service.Select(&sess.Nav, c.catalog, id); err != nil {
		c.log.Infof("🔁 Select: %v, staying on grid", err)
	} else if previous != id {
		sess.Form = models.ReservationForm{}
	}
	sess.Unlock()

	redirectHome(w, r)
}

// Back handles POST /back
func (c *StorefrontController) Back(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	sess.Lock()
	service.Back(&sess.Nav)
	sess.Unlock()

	redirectHome(w, r)
}

// Carousel handles POST /carousel with either dir=-1|1 or index=N
func (c *StorefrontController) Carousel(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	id := strings.TrimSpace(r.PostFormValue("id"))

	sess.Lock()
	defer func() {
		sess.Unlock()
		redirectHome(w, r)
	}()

	product, err := c.catalog.Find(sess.Nav.Collection, id)
	if err != nil {
		c.log.Infof("🔁 Carousel: %v", err)
		return
	}
	carousel := service.NewCarousel(sess.Carousel)

	if raw := r.PostFormValue("index"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			c.log.Warnf("⚠️  Carousel: Invalid index %q", raw)
			return
		}
		carousel.Set(*product, index)
		return
	}

	dir, err := strconv.Atoi(r.PostFormValue("dir"))
	if err != nil {
		c.log.Warnf("⚠️  Carousel: Invalid direction %q", r.PostFormValue("dir"))
		return
	}
	if err := carousel.Advance(*product, dir); err != nil {
		c.log.Infof("⚠️  Carousel: %s: %v", product.Key(), err)
	}
}

// Reserve handles POST /reserve for the product on the details screen
func (c *StorefrontController) Reserve(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	name := r.PostFormValue("name")
	contact := r.PostFormValue("contact")

	sess.Lock()
	defer func() {
		sess.Unlock()
		redirectHome(w, r)
	}()

	product, err := c.catalog.Find(sess.Nav.Collection, sess.Nav.SelectedID)
	if sess.Nav.Screen != models.ScreenDetails || err != nil {
		c.log.Infof("🔁 Reserve: No product on screen, back to grid")
		service.Back(&sess.Nav)
		return
	}

	sess.Form = models.ReservationForm{Name: name, Contact: contact}

	result, err := c.reservations.Submit(r.Context(), name, contact, *product, sess.Nav.Collection)
	var validationErr *service.ValidationError
	var notifyErr *service.NotifyError
	switch {
	case errors.As(err, &validationErr):
		sess.Form.Error = validationMessages[validationErr.Reason]
	case errors.As(err, &notifyErr):
		sess.Flash = &models.Flash{Kind: models.FlashWarning, Message: notifyFailureMessage(product.Name, notifyErr)}
	case err != nil:
		c.log.Errorf("❌ Reserve: Unexpected error: %v", err)
		sess.Flash = &models.Flash{Kind: models.FlashError, Message: "Something went wrong. Please try again."}
	default:
		sess.Form = models.ReservationForm{}
		sess.Flash = &models.Flash{
			Kind: models.FlashSuccess,
			Message: fmt.Sprintf("Thank you, %s. Your reservation request for %s has been sent. We will contact you shortly.",
				result.Request.CustomerName, result.Request.ModelName),
		}
	}
}

// notifyFailureMessage only claims the request was recorded when it really was
func notifyFailureMessage(model string, err *service.NotifyError) string {
	if err.Recorded {
		return fmt.Sprintf("Your request for %s was recorded, but we could not notify the shop (%v). We will follow up, or you can submit again.", model, err.Cause)
	}
	return fmt.Sprintf("We could not send your request for %s (%v). Please submit again.", model, err.Cause)
}

// Image handles GET /images/{collection}/{id}/{index}?size=700|900
func (c *StorefrontController) Image(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	edge, err := service.ParseEdge(r.URL.Query().Get("size"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := c.catalog.Find(collection, id)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= len(product.Images) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	data, err := c.images.Square(product.Images[index], edge)
	if err != nil {
		c.log.Warnf("⚠️  Image: %v", err)
		writePlaceholder(w, edge)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Logo handles GET /logo
func (c *StorefrontController) Logo(w http.ResponseWriter, r *http.Request) {
	data, err := c.images.Logo(c.logoPath)
	if err != nil {
		c.log.Warnf("⚠️  Logo: %v", err)
		writePlaceholder(w, 200)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writePlaceholder(w http.ResponseWriter, edge int) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(service.Placeholder(edge))
}
