package web

import (
	"errors"
	"net/url"
	"strconv"

	authservice "foodserver/auth/service"
	"foodserver/auth/users"
	"foodserver/internal/config"
	"foodserver/internal/domain"
	"foodserver/internal/service"
	"foodserver/internal/tgbot"
	"foodserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const userKey = "user"

type Server struct {
	auth        *authservice.Service
	foodService *service.FoodService
	bot         *tgbot.Bot
	app         *fiber.App
	cfg         config.Server
	log         *logrus.Entry
}

// New wires the routes. The bot may be nil, in which case order activity is
// simply not announced.
func New(fs *service.FoodService, cfg config.Server, authService *authservice.Service, bot *tgbot.Bot, l *logrus.Logger) (*Server, error) {
	server := Server{
		foodService: fs,
		auth:        authService,
		bot:         bot,
		cfg:         cfg,
		log: l.WithFields(map[string]interface{}{
			"from": "web",
		}),
	}

	app := fiber.New(fiber.Config{
		AppName: "foodserver",
	})
	app.Use(func(c *fiber.Ctx) error {
		cookie := c.Cookies(authService.CookieName())
		user, err := authService.Auth(c.Context(), cookie)
		if err == nil {
			c.Context().SetUserValue(userKey, user)
		}
		return c.Next()
	})

	app.Get(webpath.Signup, server.HandleSignupPage)
	app.Post(webpath.Signup, server.HandleSignup)
	app.Get(webpath.Verify, server.HandleVerifyPage)
	app.Post(webpath.VerifyOtp, server.HandleVerifyOTP)
	app.Post(webpath.ResendOtp, server.HandleResendOTP)
	app.Get(webpath.Signin, server.HandleSignInPage)
	app.Post(webpath.Signin, server.HandleSignIn)
	app.Get(webpath.Logout, server.HandleLogout)
	app.Get(webpath.Profile, server.requirePageUser, server.HandleProfile)
	app.Post(webpath.Update, server.requirePageUser, server.HandleUpdate)
	app.Post(webpath.Delete, server.requirePageUser, server.HandleDelete)
	app.Get(webpath.Home, server.handleHome)

	app.Get(webpath.ApiFoods, server.handleListFoods)
	app.Get(webpath.ApiFood, server.handleGetFood)
	app.Get(webpath.ApiCart, server.requireUser, server.handleGetCart)
	app.Post(webpath.ApiCart, server.requireUser, server.handleAddToCart)
	app.Post(webpath.ApiCheckout, server.requireUser, server.handleCheckout)
	app.Get(webpath.ApiOrders, server.requireUser, server.handleOrders)

	app.Post(webpath.AdminFoods, server.requireAdmin, server.handleCreateFood)
	app.Put(webpath.AdminFood, server.requireAdmin, server.handleUpdateFood)
	app.Delete(webpath.AdminFood, server.requireAdmin, server.handleDeleteFood)
	app.Get(webpath.AdminOrders, server.requireAdmin, server.handleAllOrders)
	app.Put(webpath.AdminOrderStatus, server.requireAdmin, server.handleUpdateOrderStatus)
	app.Delete(webpath.AdminOrder, server.requireAdmin, server.handleDeleteOrder)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func currentUser(ctx *fiber.Ctx) (users.User, bool) {
	user, ok := ctx.Context().UserValue(userKey).(users.User)
	return user, ok
}

// requirePageUser guards page-flow routes: anonymous requests are redirected
// to the sign-in form.
func (s *Server) requirePageUser(ctx *fiber.Ctx) error {
	if _, ok := currentUser(ctx); !ok {
		return ctx.Redirect(webpath.Signin)
	}
	return ctx.Next()
}

func (s *Server) requireUser(ctx *fiber.Ctx) error {
	if _, ok := currentUser(ctx); !ok {
		ctx.Status(fiber.StatusUnauthorized)
		return ctx.JSON(failure(authservice.ErrNotAuthorized))
	}
	return ctx.Next()
}

func (s *Server) requireAdmin(ctx *fiber.Ctx) error {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.Status(fiber.StatusUnauthorized)
		return ctx.JSON(failure(authservice.ErrNotAuthorized))
	}
	if !user.IsAdmin() {
		ctx.Status(fiber.StatusForbidden)
		return ctx.JSON(failure(authservice.ErrForbidden))
	}
	return ctx.Next()
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, authservice.ErrInvalidInput),
		errors.Is(err, authservice.ErrInvalidOTP),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrPaymentFailed):
		return fiber.StatusBadRequest
	case errors.Is(err, authservice.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, authservice.ErrNotFound),
		errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, authservice.ErrInvalidCredentials),
		errors.Is(err, authservice.ErrNotAuthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, authservice.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) fail(ctx *fiber.Ctx, err error) error {
	status := statusFromError(err)
	if status == fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	ctx.Status(status)
	return ctx.JSON(failure(err))
}

func (s *Server) HandleSignupPage(ctx *fiber.Ctx) error {
	return ctx.JSON(ok("sign up with name, email and password"))
}

func (s *Server) HandleSignInPage(ctx *fiber.Ctx) error {
	return ctx.JSON(ok("sign in with email and password"))
}

func (s *Server) HandleSignup(ctx *fiber.Ctx) error {
	req, err := parseSignupRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	user, err := s.auth.Register(ctx.Context(), req.name, req.email, req.password)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Redirect(webpath.Verify + "?email=" + url.QueryEscape(user.Email))
}

func (s *Server) HandleVerifyPage(ctx *fiber.Ctx) error {
	email := ctx.Query("email", "")
	if email == "" {
		return ctx.Redirect(webpath.Home)
	}
	return ctx.JSON(ok("enter the code sent to your email").With("email", email))
}

func (s *Server) HandleVerifyOTP(ctx *fiber.Ctx) error {
	req, err := parseVerifyRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	user, err := s.auth.VerifyOTP(ctx.Context(), req.email, req.otp)
	if err != nil {
		return s.fail(ctx, err)
	}
	cookie, err := s.auth.Issue(user, s.cfg.Host)
	if err != nil {
		return s.fail(ctx, err)
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.Profile)
}

func (s *Server) HandleResendOTP(ctx *fiber.Ctx) error {
	email := ctx.FormValue("email", "")
	if err := s.auth.ResendOTP(ctx.Context(), email); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("A new OTP has been sent to your email."))
}

func (s *Server) HandleSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	user, err := s.auth.Login(ctx.Context(), req.email, req.password)
	if err != nil {
		return s.fail(ctx, err)
	}
	cookie, err := s.auth.Issue(user, s.cfg.Host)
	if err != nil {
		return s.fail(ctx, err)
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.Home)
}

func (s *Server) HandleProfile(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	return ctx.JSON(ok("").With("user", convertUser(user)))
}

func (s *Server) HandleUpdate(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	req, err := parseUpdateRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	updated, err := s.auth.Update(ctx.Context(), user.ID, req.name, req.password)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("User updated successfully.").With("user", convertUser(updated)))
}

func (s *Server) HandleDelete(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	if err := s.auth.Delete(ctx.Context(), user.ID); err != nil {
		return s.fail(ctx, err)
	}
	s.auth.Logout(ctx.Cookies(s.auth.CookieName()))
	ctx.ClearCookie(s.auth.CookieName())
	return ctx.Redirect(webpath.Home)
}

func (s *Server) HandleLogout(ctx *fiber.Ctx) error {
	s.auth.Logout(ctx.Cookies(s.auth.CookieName()))
	ctx.ClearCookie(s.auth.CookieName())
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleHome(ctx *fiber.Ctx) error {
	return ctx.Redirect(webpath.ApiFoods)
}

func (s *Server) handleListFoods(ctx *fiber.Ctx) error {
	foods, err := s.foodService.ListFoods()
	if err != nil {
		return s.fail(ctx, err)
	}
	categories, err := s.foodService.Categories()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("").
		With("foods", convertFoods(foods)).
		With("categories", categories))
}

func (s *Server) handleGetFood(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, service.ErrNotFound)
	}
	food, err := s.foodService.GetFood(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("").With("food", convertFood(food)))
}

func (s *Server) handleGetCart(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	cart, err := s.foodService.GetCart(user.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("").With("cart", convertCart(cart)))
}

func (s *Server) handleAddToCart(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	var req addToCart
	if err := ctx.BodyParser(&req); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := req.Validate(); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	if err := s.foodService.AddToCart(user.ID, req.FoodID, req.Quantity); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("Product added to cart"))
}

func (s *Server) handleCheckout(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	order, err := s.foodService.Checkout(user.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if s.bot != nil {
		s.bot.AnnounceOrder(order)
	}
	return ctx.JSON(ok("The order has been successfully placed").With("order", convertOrder(order)))
}

func (s *Server) handleOrders(ctx *fiber.Ctx) error {
	user, _ := currentUser(ctx)
	orders, err := s.foodService.Orders(user.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("").With("orders", convertOrders(orders)))
}

func (s *Server) handleCreateFood(ctx *fiber.Ctx) error {
	var req createFood
	if err := ctx.BodyParser(&req); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	if err := req.Validate(); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	food, err := s.foodService.CreateFood(req.convertToDomainFood())
	if err != nil {
		return s.fail(ctx, err)
	}
	ctx.Status(fiber.StatusCreated)
	return ctx.JSON(ok("").With("food", convertFood(food)))
}

func (s *Server) handleUpdateFood(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, service.ErrNotFound)
	}
	var req createFood
	if err := ctx.BodyParser(&req); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	if err := req.Validate(); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	food := req.convertToDomainFood()
	food.ID = id
	if err := s.foodService.UpdateFood(food); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("").With("food", convertFood(food)))
}

func (s *Server) handleDeleteFood(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, service.ErrNotFound)
	}
	if err := s.foodService.DeleteFood(id); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("Food deleted"))
}

func (s *Server) handleAllOrders(ctx *fiber.Ctx) error {
	orders, err := s.foodService.AllOrders()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("").With("orders", convertOrders(orders)))
}

func (s *Server) handleUpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, service.ErrNotFound)
	}
	var req updateStatus
	if err := ctx.BodyParser(&req); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(failure(err))
	}
	order, err := s.foodService.UpdateOrderStatus(id, domain.OrderStatus(req.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	if s.bot != nil {
		s.bot.AnnounceStatus(order)
	}
	return ctx.JSON(ok("Order status updated").With("order", convertOrder(order)))
}

func (s *Server) handleDeleteOrder(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, service.ErrNotFound)
	}
	if err := s.foodService.DeleteOrder(id); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(ok("Order deleted"))
}
