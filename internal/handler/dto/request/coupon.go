package request

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"max=64"`
}
