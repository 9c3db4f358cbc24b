package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colores por tipo de mensaje
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	NotesEmoji   = Accent.Sprint("📝")
)

var activeSpinner *SmartSpinner

// SmartSpinner envuelve el spinner de terminal con mensajes de cierre.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner crea un spinner con el mensaje inicial.
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

// Start arranca el spinner y lo registra como el activo de la sesión.
func (s *SmartSpinner) Start() {
	activeSpinner = s
	s.spinner.Start()
}

// Stop frena el spinner y limpia el registro del activo.
func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
	if activeSpinner == s {
		activeSpinner = nil
	}
}

// StopActiveSpinner frena el spinner activo de la terminal, si hay uno.
func StopActiveSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
	}
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(os.Stdout, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(os.Stdout, msg)
}

func (s *SmartSpinner) Warning(msg string) {
	s.Stop()
	PrintWarning(msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(msg string) {
	fmt.Printf("%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintKeyValue(key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	fmt.Printf("   %s %s\n", keyColored, valueColored)
}

// PrintSection imprime el markdown generado con un separador arriba y abajo.
func PrintSection(title, body string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("\n%s\n", separator)
	fmt.Printf("%s %s\n", NotesEmoji, Accent.Sprint(title))
	fmt.Printf("%s\n\n", separator)
	fmt.Println(body)
}

// WithSpinner corre fn con un spinner y reporta el resultado al terminar.
func WithSpinner(message string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	err := fn()

	if err != nil {
		s.Error(fmt.Sprintf("Error: %v", err))
		return err
	}

	s.Success(message)
	return nil
}
