// Package services implements the notebook validation engine.
//
// Services contain the analysis logic and depend only on the domain
// package and the driven ports. Three services exist:
//
//   - StaticAnalyzer: content hygiene (stale output, broken links, spelling)
//   - DynamicAnalyzer: execution error reconciliation against annotations
//   - Evaluator: runs both for one notebook and combines the verdicts
package services
