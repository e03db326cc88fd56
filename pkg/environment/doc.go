// Package environment names the deployment environment a program runs in.
//
// Parse accepts the full names and the short aliases dev, stage and prod:
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	if env.IsProduction() {
//	    // production defaults
//	}
//
// Contract validation is switched off by default in Production, and the
// logger picks its format and level from the environment.
package environment
