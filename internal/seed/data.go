package seed

import "github.com/ganot/soporte-mcp/internal/domain/ticket"

// Clients are the reporting organizations used for synthetic tickets.
var Clients = []string{
	"TechCorp S.A.", "Innovatech", "Digital Solutions Ltd.", "CloudBase Inc.",
	"DataStream Corp", "SoftWarehouse", "AppDev Studios", "WebMaster Co.",
	"Cyber Systems", "NetWork Solutions", "InfoTech Group", "CodeFactory",
	"SmartBiz Ltd.", "Enterprise Solutions", "Global Tech", "FastServe Inc.",
	"ApiFirst Corp", "MicroServices S.A.", "DevOps Central", "CloudNative",
	"SecureNet", "DataVision", "TechHub", "InnovateSoft", "SystemCore",
}

// Subjects are the short problem summaries used for synthetic tickets.
var Subjects = []string{
	"Error 500 en endpoint de pagos",
	"Fallo en autenticación OAuth2",
	"Timeout en conexión a base de datos",
	"Error de memoria en servidor de aplicaciones",
	"Certificado SSL expirado",
	"API Gateway retornando 503",
	"Fallo en sincronización de caché Redis",
	"Error de permisos en bucket S3",
	"Lentitud en queries de PostgreSQL",
	"Webhook no recibiendo eventos",
	"Error de CORS en frontend",
	"Fallo en proceso de deployment",
	"Inconsistencia en datos de usuarios",
	"Error 404 en recursos estáticos",
	"Problema de rate limiting en API",
	"Fallo en job de cron nocturno",
	"Error de validación en formulario de registro",
	"Problema con cola de mensajes RabbitMQ",
	"Sesiones de usuario expirando prematuramente",
	"Error al procesar archivos CSV grandes",
	"Fallo en integración con pasarela de pago",
	"Problema de encodificación UTF-8",
	"Error en pipeline CI/CD",
	"Logs no apareciendo en CloudWatch",
	"Problema de concurrencia en transacciones",
	"Error en migración de base de datos",
	"Fallo en backup automático",
	"Problema de conectividad VPN",
	"Error en generación de reportes PDF",
	"Fallo en servicio de notificaciones push",
}

// descriptionTemplates format the long-form context per priority; %s is the
// ticket subject.
var descriptionTemplates = map[ticket.Priority]string{
	ticket.PriorityUrgent: "URGENTE: %s. Cliente reporta impacto crítico en producción. Requiere atención inmediata.",
	ticket.PriorityHigh:   "Prioridad Alta: %s. Afectando a múltiples usuarios. Necesita resolución pronto.",
	ticket.PriorityMedium: "%s. Cliente solicita revisión. Impacto moderado en operaciones.",
	ticket.PriorityLow:    "%s. Consulta de cliente. Sin impacto crítico en servicio.",
}
