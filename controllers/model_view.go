package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cafestaff/entity"
	"cafestaff/pkg/resp"
	"cafestaff/repository"
	"cafestaff/services"
	"cafestaff/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Keyed is implemented by every entity a model view can manage.
type Keyed interface {
	PrimaryKey() uint
}

// Store is what a model view needs from persistence. The generic
// repository satisfies it; services wrap it where a screen has rules.
type Store[T any] interface {
	List(ctx context.Context, q repository.ListQuery) ([]T, int64, error)
	FindByID(ctx context.Context, id uint, preloads ...string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uint) error
}

// Form is the binding target of the create and edit screens.
type Form[T any] interface {
	Apply(item *T)
}

type Auditor interface {
	Record(ctx context.Context, e entity.AuditEntry)
}

type Permissions struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

// Column is one list/detail column. Field is a dotted JSON path, Sort the
// database column used for ordering (empty when not sortable).
type Column struct {
	Label string
	Field string
	Sort  string
}

type Option struct {
	Value string
	Label string
}

// FormField describes one input of the create/edit form.
type FormField struct {
	Name    string
	Label   string
	Type    string // text, number, email, textarea, checkbox, select
	Options func(ctx context.Context) ([]Option, error)
}

// NavItem is one entry of the panel menu.
type NavItem struct {
	Name string
	URL  string
}

// ModelView serves the list/details/create/edit/delete screens of one entity.
type ModelView[T Keyed] struct {
	Name     string
	Endpoint string
	Permissions

	Columns       []Column
	SearchColumns []string
	Preloads      []string
	DefaultSort   string
	DefaultDesc   bool
	PageSize      int

	Fields      []FormField
	NewForm     func() Form[T]
	FormFrom    func(item *T) Form[T]
	UniqueField string // form field blamed for a unique-constraint violation

	Store Store[T]
	Audit Auditor
	Log   *zap.Logger
}

func (v *ModelView[T]) URL() string { return "/staff/" + v.Endpoint + "/" }

func (v *ModelView[T]) Nav() NavItem { return NavItem{Name: v.Name, URL: v.URL()} }

// Register mounts the screens under g, which is expected to be /staff.
func (v *ModelView[T]) Register(g *gin.RouterGroup) {
	r := g.Group("/" + v.Endpoint)
	r.GET("/", v.List)
	r.GET("/details/:id", v.Details)
	r.GET("/new/", v.CreateForm)
	r.POST("/new/", v.Create)
	r.GET("/edit/:id", v.EditForm)
	r.POST("/edit/:id", v.Edit)
	r.POST("/delete/:id", v.Delete)
	r.DELETE("/delete/:id", v.Delete)
}

// viewInfo is what the templates see of a view.
type viewInfo struct {
	Name       string
	URL        string
	CanCreate  bool
	CanEdit    bool
	CanDelete  bool
	Searchable bool
	Columns    []Column
}

func (v *ModelView[T]) info() viewInfo {
	return viewInfo{
		Name:       v.Name,
		URL:        v.URL(),
		CanCreate:  v.CanCreate,
		CanEdit:    v.CanEdit,
		CanDelete:  v.CanDelete,
		Searchable: len(v.SearchColumns) > 0,
		Columns:    v.Columns,
	}
}

// formFieldView is a FormField with its select options resolved.
type formFieldView struct {
	FormField
	Options []Option
}

type listParams struct {
	Page   int
	Limit  int
	Sort   string
	Desc   bool
	Search string
}

// GET /staff/:endpoint/
func (v *ModelView[T]) List(c *gin.Context) {
	q := v.listQuery(c)
	items, total, err := v.Store.List(c.Request.Context(), q)
	if err != nil {
		v.serverError(c, err)
		return
	}

	if resp.WantsJSON(c) {
		resp.OK(c, gin.H{"items": items, "page": q.Page, "limit": q.Limit, "total": total})
		return
	}

	rows, err := toRows(items)
	if err != nil {
		v.serverError(c, err)
		return
	}
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if pages < 1 {
		pages = 1
	}
	resp.Page(c, http.StatusOK, "list.html", gin.H{
		"Title": v.Name,
		"View":  v.info(),
		"Rows":  rows,
		"Query": listParams{Page: q.Page, Limit: q.Limit, Sort: q.Sort, Desc: q.Desc, Search: q.Search},
		"Total": total,
		"Pages": pages,
	})
}

func (v *ModelView[T]) listQuery(c *gin.Context) repository.ListQuery {
	q := repository.ListQuery{
		Sort:          v.DefaultSort,
		Desc:          v.DefaultDesc,
		Search:        strings.TrimSpace(c.Query("search")),
		SearchColumns: v.SearchColumns,
		Preloads:      v.Preloads,
	}
	q.Page, _ = strconv.Atoi(c.Query("page"))
	q.Limit, _ = strconv.Atoi(c.Query("page_size"))

	// only whitelisted columns reach ORDER BY
	if s := c.Query("sort"); s != "" && v.sortable(s) {
		q.Sort = s
		q.Desc = parseBool(c.Query("desc"))
	}
	q.Normalize(v.PageSize)
	return q
}

func (v *ModelView[T]) sortable(col string) bool {
	if col == "id" {
		return true
	}
	for _, c := range v.Columns {
		if c.Sort != "" && c.Sort == col {
			return true
		}
	}
	return false
}

// GET /staff/:endpoint/details/:id
func (v *ModelView[T]) Details(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := v.Store.FindByID(c.Request.Context(), id, v.Preloads...)
	if err != nil {
		v.storeError(c, err)
		return
	}

	if resp.WantsJSON(c) {
		resp.OK(c, item)
		return
	}
	row, err := toMap(item)
	if err != nil {
		v.serverError(c, err)
		return
	}
	resp.Page(c, http.StatusOK, "details.html", gin.H{
		"Title": v.Name,
		"View":  v.info(),
		"Row":   row,
	})
}

// GET /staff/:endpoint/new/
func (v *ModelView[T]) CreateForm(c *gin.Context) {
	if !v.allowed(c, v.CanCreate) {
		return
	}
	v.renderForm(c, http.StatusOK, v.NewForm(), nil, false, v.URL()+"new/")
}

// POST /staff/:endpoint/new/
func (v *ModelView[T]) Create(c *gin.Context) {
	if !v.allowed(c, v.CanCreate) {
		return
	}
	form := v.NewForm()
	if !v.bind(c, form, false, v.URL()+"new/") {
		return
	}

	var item T
	form.Apply(&item)
	if err := v.Store.Create(c.Request.Context(), &item); err != nil {
		v.saveError(c, err, form, false, v.URL()+"new/")
		return
	}

	id := item.PrimaryKey()
	v.record(c, entity.AuditCreate, &id)
	if resp.WantsJSON(c) {
		resp.Created(c, item)
		return
	}
	c.Redirect(http.StatusFound, v.URL())
}

// GET /staff/:endpoint/edit/:id
func (v *ModelView[T]) EditForm(c *gin.Context) {
	if !v.allowed(c, v.CanEdit) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := v.Store.FindByID(c.Request.Context(), id)
	if err != nil {
		v.storeError(c, err)
		return
	}
	v.renderForm(c, http.StatusOK, v.FormFrom(item), nil, true, editAction(v.URL(), id))
}

// POST /staff/:endpoint/edit/:id
func (v *ModelView[T]) Edit(c *gin.Context) {
	if !v.allowed(c, v.CanEdit) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	item, err := v.Store.FindByID(ctx, id)
	if err != nil {
		v.storeError(c, err)
		return
	}

	form := v.NewForm()
	action := editAction(v.URL(), id)
	if !v.bind(c, form, true, action) {
		return
	}
	form.Apply(item)
	if err := v.Store.Update(ctx, item); err != nil {
		v.saveError(c, err, form, true, action)
		return
	}

	v.record(c, entity.AuditUpdate, &id)
	if resp.WantsJSON(c) {
		resp.OK(c, item)
		return
	}
	c.Redirect(http.StatusFound, v.URL())
}

// POST (or DELETE) /staff/:endpoint/delete/:id
func (v *ModelView[T]) Delete(c *gin.Context) {
	if !v.allowed(c, v.CanDelete) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := v.Store.Delete(c.Request.Context(), id); err != nil {
		v.storeError(c, err)
		return
	}

	v.record(c, entity.AuditDelete, &id)
	if resp.WantsJSON(c) {
		resp.OK(c, gin.H{"id": id})
		return
	}
	c.Redirect(http.StatusFound, v.URL())
}

func (v *ModelView[T]) allowed(c *gin.Context, flag bool) bool {
	if !flag {
		resp.Fail(c, http.StatusForbidden, "This action is not permitted on "+v.Name+".")
		return false
	}
	return true
}

// bind validates the submitted form; on failure it answers the request.
func (v *ModelView[T]) bind(c *gin.Context, form Form[T], editing bool, action string) bool {
	dropBlankValues(c)
	err := c.ShouldBind(form)
	if err == nil {
		return true
	}
	fields, ok := utils.FieldErrors(err, form)
	if !ok {
		if resp.WantsJSON(c) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.Fail(c, http.StatusBadRequest, "The submitted form could not be read.")
		}
		return false
	}
	if resp.WantsJSON(c) {
		resp.Invalid(c, http.StatusBadRequest, "validation failed", fields)
		return false
	}
	v.renderForm(c, http.StatusOK, form, fields, editing, action)
	return false
}

// dropBlankValues removes empty form inputs before binding so they fail
// "required". gin binds "" into a number field as 0.
func dropBlankValues(c *gin.Context) {
	r := c.Request
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := r.ParseForm(); err != nil {
			return
		}
	case binding.MIMEMultipartPOSTForm:
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return
		}
	default:
		return
	}

	sets := []url.Values{r.Form, r.PostForm}
	if r.MultipartForm != nil {
		sets = append(sets, url.Values(r.MultipartForm.Value))
	}
	for _, vs := range sets {
		for k, v := range vs {
			if blank(v) {
				delete(vs, k)
			}
		}
	}
}

func blank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (v *ModelView[T]) saveError(c *gin.Context, err error, form Form[T], editing bool, action string) {
	var fe *services.FieldError
	switch {
	case errors.As(err, &fe):
		fields := map[string]string{fe.Field: fe.Message}
		if resp.WantsJSON(c) {
			resp.Invalid(c, http.StatusBadRequest, "validation failed", fields)
			return
		}
		v.renderForm(c, http.StatusOK, form, fields, editing, action)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		fields := map[string]string{v.UniqueField: "Already exists."}
		if resp.WantsJSON(c) {
			resp.Invalid(c, http.StatusConflict, "duplicate record", fields)
			return
		}
		v.renderForm(c, http.StatusOK, form, fields, editing, action)
	default:
		v.storeError(c, err)
	}
}

func (v *ModelView[T]) renderForm(c *gin.Context, status int, form Form[T], errs map[string]string, editing bool, action string) {
	ctx := c.Request.Context()
	values, err := toMap(form)
	if err != nil {
		v.serverError(c, err)
		return
	}

	fields := make([]formFieldView, 0, len(v.Fields))
	for _, f := range v.Fields {
		ff := formFieldView{FormField: f}
		if f.Options != nil {
			if ff.Options, err = f.Options(ctx); err != nil {
				v.serverError(c, err)
				return
			}
		}
		fields = append(fields, ff)
	}
	if errs == nil {
		errs = map[string]string{}
	}

	resp.Page(c, status, "form.html", gin.H{
		"Title":   v.Name,
		"View":    v.info(),
		"Fields":  fields,
		"Values":  values,
		"Errors":  errs,
		"Editing": editing,
		"Action":  action,
	})
}

func (v *ModelView[T]) record(c *gin.Context, action string, id *uint) {
	if v.Audit == nil {
		return
	}
	v.Audit.Record(c.Request.Context(), auditEntry(c, action, v.Endpoint, id))
}

func (v *ModelView[T]) storeError(c *gin.Context, err error) {
	if isNotFound(err) {
		resp.Fail(c, http.StatusNotFound, "Record does not exist.")
		return
	}
	v.serverError(c, err)
}

func (v *ModelView[T]) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	if v.Log != nil {
		v.Log.Error("model view failed",
			zap.String("view", v.Endpoint),
			zap.String("request_id", utils.RequestID(c)),
			zap.Error(err))
	}
	if resp.WantsJSON(c) {
		resp.ServerError(c, err)
		return
	}
	resp.Fail(c, http.StatusInternalServerError, "Something went wrong.")
}

func auditEntry(c *gin.Context, action, resource string, id *uint) entity.AuditEntry {
	e := entity.AuditEntry{
		Action:     action,
		Resource:   resource,
		RecordID:   id,
		RemoteAddr: c.ClientIP(),
	}
	if s := utils.CurrentStaff(c); s != nil {
		sid := s.ID
		e.StaffID = &sid
		e.Login = s.Login
	}
	return e
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, services.ErrNotFound)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.Fail(c, http.StatusNotFound, "Record does not exist.")
		return 0, false
	}
	return uint(id), true
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func editAction(base string, id uint) string {
	return base + "edit/" + strconv.FormatUint(uint64(id), 10)
}

// toRows decodes items into generic maps so templates can walk any column path.
func toRows[T any](items []T) ([]map[string]any, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]any, 0, len(items))
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
