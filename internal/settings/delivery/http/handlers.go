package http

import (
	"github.com/gin-gonic/gin"

	"friday-assistant/pkg/response"
)

// Get godoc
// @Summary     Get parser settings
// @Description Returns the semantic parser settings. The API key is masked.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} response.Resp{data=settingsResp}
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, newSettingsResp(h.store.Snapshot()))
}

// Update godoc
// @Summary     Update parser settings
// @Description Partially updates the API key and/or enabled flag. Takes effect on the next request.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=settingsResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snap := h.store.Update(req.toInput())
	h.l.Infof(ctx, "settings updated: enabled=%t has_api_key=%t", snap.Settings.Enabled, snap.Settings.Credential != "")

	response.OK(c, newSettingsResp(snap))
}
