// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18n(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")

		if lang != "" {
			// Handle cases like "tr-TR,tr;q=0.9,en;q=0.8"
			langs := strings.Split(lang, ",")
			firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
			switch firstLang {
			case "tr", "tr-TR", "tr_TR":
				lang = "tr"
			case "en", "en-US", "en-GB":
				lang = "en"
			default:
				lang = defaultLocale
			}
		} else {
			lang = defaultLocale
		}

		c.Set("lang", lang)
		c.Next()
	}
}
