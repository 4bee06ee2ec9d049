// Package agent contains the agent lifecycle built on top of moments and
// snapshots. The package focuses on three concerns:
//
//  1. Base identity + configuration plumbing (BaseAgent, Config)
//  2. The snapshot-driven turn loop (System, Next) with Before/Respond/After hooks
//  3. A model-backed agent (ModelAgent) that continues moments via model.Model
//
// Design principles:
//   - No hidden global state; agents are created from explicit Config values
//   - Hooks receive the moment of the NEXT snapshot, so prior snapshots in a
//     chain are never mutated
//   - Model specifics stay in the model package; agents only see model.Model
package agent
