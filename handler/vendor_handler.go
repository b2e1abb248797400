package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type VendorHandler interface {
	HandleCreate(c *gin.Context)
	HandleGet(c *gin.Context)
	HandleList(c *gin.Context)
	HandleUpdate(c *gin.Context)
	HandleDelete(c *gin.Context)
}

type vendorHandler struct {
	vendorService service.VendorService
}

func NewVendorHandler(vendorService service.VendorService) VendorHandler {
	return &vendorHandler{
		vendorService: vendorService,
	}
}

func (h *vendorHandler) HandleCreate(c *gin.Context) {
	var req types.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	vendor, err := h.vendorService.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Vendor created",
		Data:    vendor,
	})
}

func (h *vendorHandler) HandleGet(c *gin.Context) {
	vendor, err := h.vendorService.Get(c, c.Param("vendorId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   vendor,
	})
}

func (h *vendorHandler) HandleList(c *gin.Context) {
	vendors, err := h.vendorService.List(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   vendors,
	})
}

func (h *vendorHandler) HandleUpdate(c *gin.Context) {
	var req types.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	vendor, err := h.vendorService.Update(c, c.Param("vendorId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Vendor updated",
		Data:    vendor,
	})
}

func (h *vendorHandler) HandleDelete(c *gin.Context) {
	if err := h.vendorService.Delete(c, c.Param("vendorId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Vendor deleted",
	})
}
