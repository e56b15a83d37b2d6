package ports

// Tipos de notificación hacia el usuario.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Notifier puerto del colaborador de notificaciones. Los casos de uso lo
// invocan fire-and-forget: el valor de retorno no existe y el envío nunca
// forma parte de la máquina de estados.
type Notifier interface {
	Notify(kind, title, message string)
}
