package flappybird

// Commands is the handle systems and modules use to mutate the app:
// state transitions, resource registration, system scheduling.
type Commands struct {
	app *App
}

func (cmd *Commands) ChangeState(newState State) *Commands {
	cmd.app.changeState(newState)
	return cmd
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// Logger resolves the app logger; systems get a no-op logger when no
// logging module is installed.
func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
