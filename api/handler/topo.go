package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/topoclimb/topoclimb-gateway/federation"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

// TopoHandler proxies route topo drawings from backends.
type TopoHandler struct {
	engine *federation.Engine
}

func NewTopoHandler(engine *federation.Engine) *TopoHandler {
	return &TopoHandler{engine: engine}
}

type topoImage struct {
	data        []byte
	contentType string
}

// GetTopoImage handles GET /api/backends/:id/routes/:routeId/topo.
// The backend's declared Content-Type is not trusted; the bytes are sniffed
// before being served.
func (h *TopoHandler) GetTopoImage(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	routeID, ok := localID(c, "routeId")
	if !ok {
		return
	}

	img, err := federation.One(c.Request.Context(), h.engine, id,
		func(ctx context.Context, cl *topoclimb.Client) (topoImage, error) {
			data, ct, err := cl.TopoImage(ctx, routeID)
			return topoImage{data: data, contentType: ct}, err
		})
	if err != nil {
		writeFederationError(c, err)
		return
	}

	ct := sniffImageType(img.Item.data, img.Item.contentType)
	if ct == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend returned a non-image topo"})
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, ct, img.Item.data)
}

// sniffImageType returns the content-type of image bytes, preferring the
// provided header value when it is already an image/* type, and falling back
// to mimetype.Detect which recognises more formats than the stdlib (WebP,
// AVIF, SVG payloads served as octet-stream). Returns "" when neither is an
// image.
func sniffImageType(data []byte, headerCT string) string {
	mimeType := strings.SplitN(headerCT, ";", 2)[0]
	if strings.HasPrefix(mimeType, "image/") {
		return mimeType
	}
	detected := mimetype.Detect(data)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	return ""
}
