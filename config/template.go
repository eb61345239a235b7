package config

// DefaultManifest is a fully-commented starter manifest that validates as
// written. Options without a documented default (the hopping and interaction
// parameters) carry example values; everything else is at its default.
const DefaultManifest = `box_sizes:
  niw_core: -1 # number of bosonic Matsubara frequencies; -1 uses all available
  niv_core: -1 # number of fermionic Matsubara frequencies; -1 uses all available
  niv_shell: 0 # size of the asymptotic shell; 0 disables the tail extension

lattice:
  symmetries: two_dimensional_square # named set or list of {x-inv, y-inv, z-inv, x-y-sym, x-y-inv}
  type: t_tp_tpp # one of {t_tp_tpp, from_wannier90, from_wannierHK}
  hr_input: [1.0, -0.2, 0.1] # [t, tp, tpp] for t_tp_tpp, file path otherwise
  interaction_type: kanamori # one of {local_from_dmft, kanamori_from_dmft, kanamori, custom}
  interaction_input: [1, 8.0, 0.0] # [n_bands, U, J] or [n_bands, U, J, U']; U' defaults to U - 2J
  nk: [16, 16, 1] # k-grid dimensions
  nq: [16, 16, 1] # q-grid dimensions; defaults to nk when omitted

self_consistency:
  max_iter: 20 # maximum number of iterations
  save_iter: true # persist each iteration to disk
  epsilon: 1.0e-4 # convergence threshold
  mixing: 0.3 # mixing weight of the new iteration
  mixing_strategy: linear # one of {linear, pulay}; pulay needs save_iter and save_quantities
  mixing_history_length: 5 # iterations kept for pulay mixing
  previous_sc_path: "" # continue from a previous self-consistency run

dmft_input:
  type: w2dyn # format of the DMFT input files
  input_path: ./ # directory holding the DMFT data
  fname_1p: 1p-data.hdf5 # one-particle correlation functions
  fname_2p: g4iw_sym.hdf5 # two-particle correlation functions
  do_sym_v_vp: true # symmetrize G2 in v and v'

lambda_correction:
  perform_lambda_correction: true # only valid for single-orbital systems
  type: sp # one of {sp, spch}

eliashberg:
  perform_eliashberg: false # solve the linearized gap equation
  save_pairing_vertex: false
  save_fq: false
  n_eig: 2 # number of eigenvalues to compute
  epsilon: 1.0e-7 # power-iteration convergence threshold
  symmetry: d-wave # starting ansatz, one of {p-wave-x, p-wave-y, d-wave, random}
  include_local_part: true
  subfolder_name: Eliashberg

poly_fitting:
  do_poly_fitting: false # fit the self-energy tail with a polynomial
  n_fit: -1 # fit range; -1 derives niv_core + 40
  o_fit: 5 # polynomial order

output:
  output_path: ./
  do_plotting: true
  save_quantities: true
  plotting_subfolder_name: Plots
`
