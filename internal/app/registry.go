package app

import (
	"time"

	"am-hris/internal/approval"
	"am-hris/internal/audit"
	"am-hris/internal/auth"
	"am-hris/internal/config"
	"am-hris/internal/correction"
	"am-hris/internal/leave"
	"am-hris/internal/leavebalance"
	"am-hris/internal/messaging/kafka"
	"am-hris/internal/organization"
	"am-hris/internal/payroll"
	"am-hris/internal/rbac"
	"am-hris/internal/rbac/infra"
	"am-hris/internal/shared/token"
	"am-hris/internal/shared/uow"
	"am-hris/internal/timelog"
	"am-hris/internal/user"
	"am-hris/internal/workday"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	db          *gorm.DB
	rdb         redis.Cmdable
	cfg         *config.Config
	calendarLoc *time.Location
	logger      *zap.Logger
}

func registerModules(router *gin.Engine, m modules) error {
	// --- RBAC core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)
	if err := rbacService.LoadPolicy(rbac.DefaultInheritance(), rbac.DefaultPermissions()); err != nil {
		return err
	}

	// --- Shared infrastructure ---
	unitOfWork := uow.New(m.db)
	issuer := token.NewIssuer(m.cfg.Auth.JWTSecret, m.cfg.Auth.AccessTokenTTL)
	calendar := workday.NewCalendar(m.calendarLoc)

	// --- Repositories ---
	auditRepo := audit.NewRepository(m.db)
	correctionRepo := correction.NewRepository(m.db)
	leaveRepo := leave.NewRepository(m.db)
	leaveBalanceRepo := leavebalance.NewRepository(m.db)
	organizationRepo := organization.NewRepository(m.db)
	outboxRepo := kafka.NewOutboxRepository(m.db)
	payrollRepo := payroll.NewRepository(m.db)
	timeLogRepo := timelog.NewRepository(m.db)
	userRepo := user.NewRepository(m.db)

	auditSink := audit.NewSink(auditRepo)

	// --- Services ---
	auditService := audit.NewService(auditRepo)
	authService := auth.NewService(unitOfWork, organizationRepo, userRepo, leaveBalanceRepo, auditSink, issuer)
	correctionService := correction.NewService(unitOfWork, correctionRepo, timeLogRepo, auditSink)
	leaveService := leave.NewService(unitOfWork, leaveRepo, leaveBalanceRepo, auditSink, outboxRepo, calendar)
	leaveBalanceService := leavebalance.NewService(unitOfWork, leaveBalanceRepo, auditSink)
	organizationService := organization.NewService(organizationRepo)
	payrollService := payroll.NewService(payrollRepo, m.rdb, calendar)
	timeLogService := timelog.NewService(unitOfWork, timeLogRepo, auditSink, calendar)
	userService := user.NewService(unitOfWork, userRepo, leaveBalanceRepo, auditSink, m.rdb)
	approvalService := approval.NewService(approval.Dependencies{
		UnitOfWork:  unitOfWork,
		Corrections: correctionRepo,
		TimeLogs:    timeLogRepo,
		Leaves:      leaveRepo,
		Balances:    leaveBalanceRepo,
		Audit:       auditSink,
		Outbox:      outboxRepo,
		Invalidator: payrollService,
		Calendar:    calendar,
	})

	// --- Handlers ---
	approvalHandler := approval.NewHandler(approvalService)
	auditHandler := audit.NewHandler(auditService)
	authHandler := auth.NewHandler(authService, m.cfg.Auth.SecureCookie)
	correctionHandler := correction.NewHandler(correctionService)
	leaveHandler := leave.NewHandler(leaveService)
	leaveBalanceHandler := leavebalance.NewHandler(leaveBalanceService)
	organizationHandler := organization.NewHandler(organizationService)
	payrollHandler := payroll.NewHandler(payrollService)
	rbacHandler := rbac.NewHandler(rbacService)
	timeLogHandler := timelog.NewHandler(timeLogService)
	userHandler := user.NewHandler(userService)

	// --- Routes registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, issuer)
		organization.RegisterRoutes(api, organizationHandler, issuer)
		rbac.RegisterRoutes(api, rbacHandler, issuer)
		user.RegisterRoutes(api, userHandler, issuer, rbacService, m.rdb, m.logger)
		timelog.RegisterRoutes(api, timeLogHandler, issuer, rbacService, m.rdb, m.logger)
		correction.RegisterRoutes(api, correctionHandler, issuer, rbacService, m.rdb, m.logger)
		leave.RegisterRoutes(api, leaveHandler, issuer, rbacService, m.rdb, m.logger)
		leavebalance.RegisterRoutes(api, leaveBalanceHandler, issuer, rbacService)
		approval.RegisterRoutes(api, approvalHandler, issuer, rbacService, m.rdb, m.logger)
		payroll.RegisterRoutes(api, payrollHandler, issuer, rbacService)
		audit.RegisterRoutes(api, auditHandler, issuer, rbacService)
	}

	return nil
}
