package script

// Report records which pipeline steps changed the content
type Report struct {
	Changed []string
}

// Touched reports whether the named step changed the content
func (r Report) Touched(step string) bool {
	for _, s := range r.Changed {
		if s == step {
			return true
		}
	}
	return false
}

// Step names, in pipeline order
const (
	StepExtractComponents     = "extract-components"
	StepExtractEmits          = "extract-emits"
	StepExtractProps          = "extract-props"
	StepRemoveComponentName   = "remove-name"
	StepRemoveDoubleSymbols   = "remove-double-symbols"
	StepApplyEmits            = "apply-emits"
	StepApplyProps            = "apply-props"
	StepRemoveExport          = "remove-export"
	StepRemoveSetup           = "remove-setup"
	StepRemoveDefineComponent = "remove-define-component"
)

type step struct {
	name string
	run  func()
}

// Fields must be extracted before the name and export are touched; the
// separator cleanup runs again after the export and setup splices.
func (b *Block) steps() []step {
	return []step{
		{StepExtractComponents, b.ExtractComponents},
		{StepExtractEmits, b.ExtractEmits},
		{StepExtractProps, b.ExtractProps},
		{StepRemoveComponentName, b.RemoveComponentName},
		{StepRemoveDoubleSymbols, b.RemoveDoubleSymbols},
		{StepApplyEmits, b.ApplyEmits},
		{StepApplyProps, b.ApplyProps},
		{StepRemoveExport, b.RemoveExport},
		{StepRemoveSetup, b.RemoveSetup},
		{StepRemoveDoubleSymbols, b.RemoveDoubleSymbols},
		{StepRemoveDefineComponent, b.RemoveDefineComponent},
	}
}

// Run rewrites the block into the script setup form. Steps that find nothing
// to do leave the content unchanged; Run always completes.
func (b *Block) Run() Report {
	var report Report
	for _, s := range b.steps() {
		before := b.content
		s.run()
		if b.content != before && !report.Touched(s.name) {
			report.Changed = append(report.Changed, s.name)
		}
	}
	return report
}
