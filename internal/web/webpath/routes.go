package webpath

const (
	Signup    = "/signup"
	Signin    = "/signin"
	Verify    = "/verify"
	VerifyOtp = "/verify-otp"
	ResendOtp = "/resend-otp"
	Logout    = "/logout"
	Profile   = "/profile"
	Update    = "/update"
	Delete    = "/delete"
	Home      = "/"

	Api         = "/api"
	ApiFoods    = Api + "/foods"
	ApiFood     = ApiFoods + "/:id"
	ApiCart     = Api + "/cart"
	ApiCheckout = Api + "/checkout"
	ApiOrders   = Api + "/orders"

	Admin            = "/admin"
	AdminFoods       = Admin + "/foods"
	AdminFood        = AdminFoods + "/:id"
	AdminOrders      = Admin + "/orders"
	AdminOrder       = AdminOrders + "/:id"
	AdminOrderStatus = AdminOrders + "/:id/status"
)
