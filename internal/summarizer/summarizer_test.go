package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

const sampleDiff = `diff --git a/src/app.go b/src/app.go
index 83db48f..bf3a1dc 100644
--- a/src/app.go
+++ b/src/app.go
@@ -1,5 +1,6 @@
 package app
+import "fmt"
-import "log"
 func main() {
@@ -10,3 +11,4 @@
+    fmt.Println("hola")
 }
@@ -20,3 +22,4 @@
+// tercera
@@ -30,3 +33,4 @@
+// cuarta, afuera del tope
`

func TestCapDiff(t *testing.T) {
	t.Run("debería cortar en tres hunks", func(t *testing.T) {
		capped := CapDiff(sampleDiff)

		hunkLines := 0
		for _, line := range strings.Split(capped, "\n") {
			if strings.HasPrefix(line, "@@") {
				hunkLines++
			}
		}
		assert.Equal(t, 3, hunkLines, "se esperaban 3 marcadores de hunk")
		assert.NotContains(t, capped, "cuarta")
		assert.Contains(t, capped, "tercera")
	})

	t.Run("no debería emitir líneas de contexto", func(t *testing.T) {
		capped := CapDiff(sampleDiff)

		for _, line := range strings.Split(capped, "\n") {
			if line == "" || strings.HasPrefix(line, "@@") {
				continue
			}
			assert.True(t, strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-"), "línea inesperada: %q", line)
		}
		assert.NotContains(t, capped, "package app")
	})

	t.Run("no debería emitir los encabezados del diff", func(t *testing.T) {
		capped := CapDiff(sampleDiff)

		assert.NotContains(t, capped, "diff --git")
		assert.NotContains(t, capped, "index 83db48f")
		assert.NotContains(t, capped, "+++ b/")
	})

	t.Run("debería cortar la captura ante una línea extraña y retomar en el próximo @@", func(t *testing.T) {
		diff := "@@ -1,2 +1,2 @@\n+uno\ndiff --git a/x b/x\n+colado\n@@ -5,2 +5,2 @@\n+dos\n"

		capped := CapDiff(diff)
		assert.Contains(t, capped, "+uno")
		assert.NotContains(t, capped, "colado")
		assert.Contains(t, capped, "+dos")
	})

	t.Run("debería devolver vacío para un diff vacío", func(t *testing.T) {
		assert.Equal(t, "", CapDiff(""))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("debería filtrar ignorados y armar los bloques por archivo", func(t *testing.T) {
		mockGit := new(MockGitService)
		rang := "main..HEAD"

		mockGit.On("ChangedFiles", rang).Return([]string{"src/core/api.go", "dist/bundle.min.js"})
		mockGit.On("CommitSubjects", rang).Return([]string{"feat: endpoint nuevo", "fix: typo"})
		mockGit.On("FileCommitSubjects", rang, "src/core/api.go").Return([]string{"feat: endpoint nuevo"})
		mockGit.On("FileDiff", rang, "src/core/api.go").Return("@@ -1,2 +1,3 @@\n+nuevo endpoint\n")

		s := New(mockGit, []string{"*.min.js"}, nil)
		summary, err := s.Summarize(context.Background(), rang)

		assert.NoError(t, err)
		assert.Equal(t, "feat: endpoint nuevo", summary.Title)
		assert.Len(t, summary.Files, 1)
		assert.Equal(t, "core", summary.Files[0].Scope)
		mockGit.AssertNotCalled(t, "FileDiff", rang, "dist/bundle.min.js")
	})

	t.Run("debería producir un resumen vacío sin archivos relevantes", func(t *testing.T) {
		mockGit := new(MockGitService)
		rang := "v1.0.0..HEAD"

		mockGit.On("ChangedFiles", rang).Return([]string{"dist/a.min.js"})
		mockGit.On("CommitSubjects", rang).Return([]string{})

		s := New(mockGit, []string{"*.min.js"}, nil)
		summary, err := s.Summarize(context.Background(), rang)

		assert.NoError(t, err)
		assert.Empty(t, summary.Files)
		assert.Empty(t, summary.Title)
	})
}

func TestPayload(t *testing.T) {
	t.Run("debería concatenar bloque global y bloques por archivo", func(t *testing.T) {
		summary := &models.RangeSummary{
			Range:    "main..HEAD",
			Title:    "feat: endpoint nuevo",
			Subjects: []string{"feat: endpoint nuevo", "fix: typo"},
			Files: []models.FileSummary{
				{
					Path:     "src/core/api.go",
					Scope:    "core",
					Subjects: []string{"feat: endpoint nuevo"},
					Diff:     "@@ -1,2 +1,3 @@\n+nuevo endpoint\n",
				},
			},
		}

		payload := Payload(summary)

		assert.Contains(t, payload, "PR Title: feat: endpoint nuevo")
		assert.Contains(t, payload, "Range: main..HEAD")
		assert.Contains(t, payload, "File: src/core/api.go")
		assert.Contains(t, payload, "Scope: core")
		assert.Contains(t, payload, "+nuevo endpoint")
		assert.Contains(t, payload, "---")
	})
}
