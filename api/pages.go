package api

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/session"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const flashCookie = "pickup_flash"

// LoadTemplates parses every page. Times are shown in loc.
func LoadTemplates(loc *time.Location) (*template.Template, error) {
	funcs := template.FuncMap{
		"deref": func(n *int) int {
			if n == nil {
				return 0
			}
			return *n
		},
		"when": func(t time.Time) string {
			return pickup.FormatStart(t.In(loc))
		},
		"stamp": func(t time.Time) string {
			return t.In(loc).Format("Jan 2, 2006 3:04 PM")
		},
		"clock": func(t time.Time) string {
			return t.In(loc).Format("3:04 PM")
		},
		"skillLevels": func() []pickup.SkillLevel {
			return pickup.SkillLevels
		},
		"icon":  pickup.SportIcon,
		"badge": pickup.StatusBadge,
		"field": func(errs pickup.ValidationErrors, name string) string {
			return errs[name]
		},
		"dict": func(pairs ...any) map[string]any {
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				key, _ := pairs[i].(string)
				m[key] = pairs[i+1]
			}
			return m
		},
	}

	return template.New("pages").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
}

// render adds the values every page layout reads.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["Authenticated"] = session.Current(c).Authenticated()

	if _, ok := data["Alert"]; !ok {
		if msg := takeFlash(c); msg != "" {
			data["Alert"] = msg
		}
	}

	c.HTML(status, name, data)
}

func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.tmpl", gin.H{
		"Title":   http.StatusText(status),
		"Message": message,
	})
}

// setFlash stores a message for the next page render. gin escapes the
// cookie value.
func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	return raw
}

// localPath accepts only same-site absolute paths for post-action redirects.
func localPath(p, fallback string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return fallback
	}
	return p
}
