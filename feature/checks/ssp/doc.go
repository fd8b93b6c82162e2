// Package ssp implements the rule family of the SSP project.
//
// SSP customer exports identify requirements by "ReqIF.ForeignID" and the supplier export by
// "ForeignID"; older exports of either side fall back to "Object ID".
//
//   - SSP-06: ReqIF.Text differs from the supplier Object Text while the OEM status still
//     claims the requirement is settled.
//   - SSP-08: Classification attributes differ while the OEM status still claims the
//     requirement is settled.
//
// There are no export rules.
package ssp
